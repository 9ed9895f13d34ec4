package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ErrNotANumber is returned when a numeric field holds a value that cannot be read as a number.
var ErrNotANumber = errors.New("not a number")

// Number is a float field that accepts a JSON number or a numeric string such as "1000".
// null and the empty string read as 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	v, err := decodeNumber(data)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Integer is an int field with the same input rules as Number. Fractions are truncated.
type Integer int

func (n *Integer) UnmarshalJSON(data []byte) error {
	v, err := decodeNumber(data)
	if err != nil {
		return err
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return fmt.Errorf("%w: %v is out of range", ErrNotANumber, v)
	}
	*n = Integer(math.Trunc(v))
	return nil
}

func decodeNumber(data []byte) (float64, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, nil
		}
		raw = v
	case map[string]any, []any:
		return 0, fmt.Errorf("%w: %s", ErrNotANumber, string(data))
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s", ErrNotANumber, string(data))
	}
	return f, nil
}

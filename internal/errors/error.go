// Package errors provides sentinel errors for catalog operations.
package errors

import "errors"

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ErrCantCreateProduct is returned when a new product could not be stored, e.g. no free ID was found.
var ErrCantCreateProduct = errors.New("can't create product")

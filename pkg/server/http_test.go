package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := NewChiRouter(logger, RouterOptions{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3001"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         5 * time.Minute,
		},
		PanicMessage: "oops",
	})
	mux.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })
	return mux
}

func Test_NewChiRouter_CORS(t *testing.T) {
	testCases := []struct {
		name        string
		origin      string
		method      string
		expectAllow string
	}{
		{name: "allowed origin and method", origin: "http://localhost:3001", method: http.MethodPatch, expectAllow: "http://localhost:3001"},
		{name: "foreign origin", origin: "http://evil.example", method: http.MethodPatch, expectAllow: ""},
		{name: "method not allowed", origin: "http://localhost:3001", method: http.MethodPut, expectAllow: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req := httptest.NewRequest(http.MethodOptions, "/ok", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", tc.method)
			rr := httptest.NewRecorder()

			// when
			testRouter().ServeHTTP(rr, req)

			// then
			assert.Equal(t, tc.expectAllow, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func Test_NewChiRouter_RecoversPanics(t *testing.T) {
	// given
	router := testRouter()

	// when
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	next := httptest.NewRecorder()
	router.ServeHTTP(next, httptest.NewRequest(http.MethodGet, "/ok", nil))

	// then
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"oops"}`, rr.Body.String())
	assert.Equal(t, http.StatusOK, next.Code, "server keeps serving after a panic")
}

func Test_NewHTTPServer(t *testing.T) {
	// given
	cfg := HTTPConfig{Port: 3000, MaxHeaderBytes: 1 << 20, ReadTimeout: time.Second, WriteTimeout: 2 * time.Second, IdleTimeout: 3 * time.Second, ReadHeader: 4 * time.Second}

	// when
	srv := NewHTTPServer(cfg, http.NotFoundHandler())

	// then
	assert.Equal(t, ":3000", srv.Addr)
	assert.Equal(t, 1<<20, srv.MaxHeaderBytes)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 4*time.Second, srv.ReadHeaderTimeout)
}

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_AppliesMiddlewaresInOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/ping",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/ping",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "NF_001"))

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

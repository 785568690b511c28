package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"urlintel/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux_Index(t *testing.T) {
	mux := controller.PprofMux()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_Cmdline(t *testing.T) {
	mux := controller.PprofMux()

	req := httptest.NewRequest(http.MethodGet, "/cmdline", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
}

package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zof/solver"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(solver.New(), func(o *Options) {
		o.Mode = gin.TestMode
	})
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ZOF Poly Solver")
	assert.Contains(t, w.Body.String(), "Newton-Raphson")
}

func TestHandleForm_Solve(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("method", "newton")
	form.Set("coeffs", "1 0 -2")
	form.Set("x0", "1")
	form.Set("tol", "0.000001")
	form.Set("max_iter", "20")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Converged")
	assert.Contains(t, body, "1.414214")
	assert.Contains(t, body, "<table>")
}

func TestHandleForm_InvalidCoefficients(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{}
	form.Set("method", "newton")
	form.Set("coeffs", "one two")
	form.Set("x0", "1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coefficients")
}

func postSolve(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHandleSolve_Newton(t *testing.T) {
	s := newTestServer(t)

	w := postSolve(t, s, `{"method":"newton","coeffs":"1 0 -2","x0":1,"tol":1e-6,"max_iter":20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res solver.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.True(t, res.Converged)
	require.NotNil(t, res.Root)
	assert.InDelta(t, math.Sqrt2, *res.Root, 1e-6)
	assert.NotEmpty(t, res.Trace)
}

func TestHandleSolve_NotBracketed(t *testing.T) {
	s := newTestServer(t)

	w := postSolve(t, s, `{"method":"bisection","coeffs":"1 0 2","x0":1,"x1":2,"tol":1e-4,"max_iter":10}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res solver.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert.False(t, res.Converged)
	assert.Nil(t, res.Root)
	assert.Empty(t, res.Trace)
	assert.Contains(t, res.ErrMsg, "bracket")
}

func TestHandleSolve_MissingTol(t *testing.T) {
	s := newTestServer(t)

	w := postSolve(t, s, `{"method":"newton","coeffs":"1 0 -2","x0":1,"max_iter":20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSolve_UnknownMethod(t *testing.T) {
	s := newTestServer(t)

	w := postSolve(t, s, `{"method":"brent","coeffs":"1 0 -2","x0":1,"tol":1e-6,"max_iter":20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown method")
}

func TestHandleSolve_BadCoefficients(t *testing.T) {
	s := newTestServer(t)

	w := postSolve(t, s, `{"method":"newton","coeffs":"1 x -2","x0":1,"tol":1e-6,"max_iter":20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coefficients")
}

func TestHandleMethods(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/methods", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Methods []methodInfo `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Methods, 6)
}

func TestHandlePlot(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/plot?method=bisection&coeffs=1+0+-2&x0=0&x1=2&tol=0.0001&max_iter=30", nil)
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestHandlePlot_EmptyTrace(t *testing.T) {
	s := newTestServer(t)

	// Precondition violation before the first step leaves nothing to plot.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/plot?method=bisection&coeffs=1+0+2&x0=1&x1=2&tol=0.0001&max_iter=30", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBuildTable(t *testing.T) {
	s := newTestServer(t)

	req, err := s.buildRequest(formInputs{
		Method: "bisection", Coeffs: "1 0 -2", X0: "0", X1: "2", Tol: "0.0001", MaxIter: "30",
	})
	require.NoError(t, err)

	res, err := s.engine.Solve(httptest.NewRequest(http.MethodGet, "/", nil).Context(), req)
	require.NoError(t, err)

	view := buildTable(req.Method, res.Trace)
	assert.Equal(t, []string{"iter", "a", "b", "x_val", "f_x", "error"}, view.Headers)
	require.NotEmpty(t, view.Rows)
	assert.Equal(t, "1", view.Rows[0][0])
	assert.Len(t, view.Rows[0], len(view.Headers))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "addr: \":9000\"\nlog_level: debug\ndefaults:\n  tol: 0.001\n  max_iter: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.001, cfg.Defaults.Tol)
	assert.Equal(t, 25, cfg.Defaults.MaxIter)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 0.01, cfg.Defaults.Delta)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes struct{}

func (routes) RegisterRoutes(e *echo.Echo) {
	e.GET("/ok", func(c echo.Context) error { return SuccessResponse(c, "pong") })
	e.GET("/boom", func(c echo.Context) error { panic("boom") })
	e.GET("/gone", func(c echo.Context) error { return AppErrorResponse(c, NotFoundErrorf("market %d", 7)) })
}

func serve(s *Server, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func newTestServer(opts ...ServerOption) (*Server, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	opts = append([]ServerOption{WithMetrics("/metrics", reg, reg)}, opts...)
	return NewServer(routes{}, opts...), reg
}

func TestServerRoutesAndEnvelope(t *testing.T) {
	s, _ := newTestServer()

	rec := serve(s, http.MethodGet, "/ok", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"OK","data":"pong"}`, rec.Body.String())

	rec = serve(s, http.MethodGet, "/gone", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"ERR_NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), "market 7")
}

func TestServerRecoversPanics(t *testing.T) {
	s, _ := newTestServer()
	rec := serve(s, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServerMetrics(t *testing.T) {
	s, _ := newTestServer()
	serve(s, http.MethodGet, "/ok", nil)
	serve(s, http.MethodGet, "/ok", nil)

	rec := serve(s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{class="2xx",method="GET",route="/ok"} 2`)
}

func TestServerCORS(t *testing.T) {
	s, _ := newTestServer()
	rec := serve(s, http.MethodOptions, "/ok", map[string]string{
		echo.HeaderOrigin:                     "https://x.com",
		echo.HeaderAccessControlRequestMethod: http.MethodGet,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://x.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	off, _ := newTestServer(WithCORS(false))
	rec = serve(off, http.MethodGet, "/ok", map[string]string{echo.HeaderOrigin: "https://x.com"})
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServerAddr(t *testing.T) {
	s, _ := newTestServer(WithHost("127.0.0.1"), WithPort(9090))
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

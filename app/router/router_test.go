package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"colorant-og/app/controller"
	"colorant-og/models"
	"colorant-og/service"
)

type emptyCatalog struct{}

func (emptyCatalog) GetCatalog(ctx context.Context) models.CatalogIndex { return nil }
func (emptyCatalog) Reset()                                           {}

func newTestHandler() http.Handler {
	logger := zap.NewNop()
	controllers := &Controllers{
		OG: controller.NewOGController(
			service.NewTokenDecoder(logger),
			service.NewPaletteResolver(emptyCatalog{}, logger),
			service.NewImageComposer(models.GeometryGolden, service.NewImagingRasterizer(), logger),
			logger,
		),
		Share: controller.NewShareController("https://picker.example.com", logger),
	}
	return SetupRoutes(controllers, logger)
}

func serve(h http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Host = "og.example.com"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Ping(t *testing.T) {
	rec := serve(newTestHandler(), http.MethodGet, "/ping", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		target      string
		status      int
		contentType string
	}{
		{target: "/", status: http.StatusFound},
		{target: "/share", status: http.StatusFound},
		{target: "/og", status: http.StatusOK, contentType: "image/png"},
		{target: "/og/abc", status: http.StatusOK, contentType: "image/png"},
		{target: "/share/abc", status: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{target: "/share?palette=abc", status: http.StatusOK, contentType: "text/html; charset=utf-8"},
		{target: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRouter_HeadImage(t *testing.T) {
	rec := serve(newTestHandler(), http.MethodHead, "/og", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestRouter_CORS(t *testing.T) {
	rec := serve(newTestHandler(), http.MethodGet, "/ping", map[string]string{"Origin": "https://elsewhere.example"})

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

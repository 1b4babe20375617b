package controller

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://picker.example.com"

func newShareRouter() http.Handler {
	c := NewShareController(testBaseURL, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/", c.RedirectHome)
	r.Get("/share", c.GetShareByQuery)
	r.Get("/share/{token}", c.GetShareByPath)
	return r
}

func TestShareController_PathToken(t *testing.T) {
	rec := doGet(t, newShareRouter(), "og.example.com", "/share/abc123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, CacheControlHTML, rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, `<meta property="og:image" content="https://og.example.com/og/abc123"/>`)
	assert.Contains(t, body, `<meta name="twitter:image" content="https://og.example.com/og/abc123"/>`)
	assert.Contains(t, body, `<link rel="canonical" href="https://picker.example.com/?palette=abc123"/>`)
	assert.Contains(t, body, `content="0;url=https://picker.example.com/?palette=abc123"`)
	assert.Contains(t, body, `location.replace(`)
}

func TestShareController_QueryToken(t *testing.T) {
	h := newShareRouter()

	t.Run("palette", func(t *testing.T) {
		rec := doGet(t, h, "og.example.com", "/share?palette=abc123")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `content="https://og.example.com/og?palette=abc123"`)
		assert.Contains(t, body, `href="https://picker.example.com/?palette=abc123"`)
	})

	t.Run("custom-palette", func(t *testing.T) {
		rec := doGet(t, h, "og.example.com", "/share?custom-palette=xyz")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `content="https://og.example.com/og?custom-palette=xyz"`)
		assert.Contains(t, body, `href="https://picker.example.com/?custom-palette=xyz"`)
	})
}

func TestShareController_DevHost(t *testing.T) {
	rec := doGet(t, newShareRouter(), "localhost:3001", "/share/abc123")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, CacheControlNoCache, rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `content="http://localhost:3001/og/abc123"`)
}

func TestShareController_RedirectsWithoutToken(t *testing.T) {
	h := newShareRouter()

	for _, target := range []string{"/", "/share", "/share?palette="} {
		rec := doGet(t, h, "og.example.com", target)
		assert.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, testBaseURL, rec.Header().Get("Location"), target)
	}
}

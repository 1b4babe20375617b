package controller

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"colorant-og/utils"
)

// Query parameters carrying a share token. palette wins when both are set.
const (
	ParamPalette       = "palette"
	ParamCustomPalette = "custom-palette"
)

// Cache-Control values
const (
	CacheControlImage   = "public, max-age=604800, s-maxage=604800"
	CacheControlHTML    = "public, max-age=604800, immutable"
	CacheControlNoCache = "no-cache"
)

// queryToken returns the token parameter name and value of the request
func queryToken(r *http.Request) (string, string) {
	q := r.URL.Query()
	if v := q.Get(ParamPalette); v != "" {
		return ParamPalette, v
	}
	if v := q.Get(ParamCustomPalette); v != "" {
		return ParamCustomPalette, v
	}
	return "", ""
}

// pathToken returns the {token} path segment
func pathToken(r *http.Request) string {
	raw := chi.URLParam(r, "token")
	if token, err := url.PathUnescape(raw); err == nil {
		return token
	}
	return raw
}

// cacheControlFor picks the long-lived value unless the request targets a dev host
func cacheControlFor(r *http.Request, production string) string {
	if utils.IsDevHost(utils.RequestHost(r)) {
		return CacheControlNoCache
	}
	return production
}

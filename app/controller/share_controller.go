package controller

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"colorant-og/service"
	"colorant-og/utils"
)

// ShareController handles HTTP requests for share pages
type ShareController struct {
	appBaseURL string
	logger     *zap.Logger
}

// NewShareController creates a new ShareController
// appBaseURL is the picker front-end that share pages redirect to
func NewShareController(appBaseURL string, logger *zap.Logger) *ShareController {
	return &ShareController{
		appBaseURL: appBaseURL,
		logger:     logger,
	}
}

// RedirectHome handles GET / and GET /share without a token
func (c *ShareController) RedirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, c.appBaseURL, http.StatusFound)
}

// GetShareByQuery handles GET /share?palette=...|?custom-palette=...
func (c *ShareController) GetShareByQuery(w http.ResponseWriter, r *http.Request) {
	param, token := queryToken(r)
	if token == "" {
		c.RedirectHome(w, r)
		return
	}

	host := utils.RequestHost(r)
	query := param + "=" + url.QueryEscape(token)
	imageURL := fmt.Sprintf("%s://%s/og?%s", utils.RequestScheme(host), host, query)
	targetURL := c.appBaseURL + "/?" + query

	c.writeShare(w, r, imageURL, targetURL)
}

// GetShareByPath handles GET /share/:token
func (c *ShareController) GetShareByPath(w http.ResponseWriter, r *http.Request) {
	token := pathToken(r)
	if token == "" {
		c.RedirectHome(w, r)
		return
	}

	host := utils.RequestHost(r)
	imageURL := fmt.Sprintf("%s://%s/og/%s", utils.RequestScheme(host), host, url.PathEscape(token))
	targetURL := c.appBaseURL + "/?" + ParamPalette + "=" + url.QueryEscape(token)

	c.writeShare(w, r, imageURL, targetURL)
}

func (c *ShareController) writeShare(w http.ResponseWriter, r *http.Request, imageURL, targetURL string) {
	html, err := service.RenderShareHTML(imageURL, targetURL)
	if err != nil {
		// the page is only a redirect stub; fall back to a plain redirect
		c.logger.Error("❌ Failed to render share page", zap.Error(err))
		http.Redirect(w, r, targetURL, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControlFor(r, CacheControlHTML))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		c.logger.Warn("Failed to write share response", zap.Error(err))
	}
}

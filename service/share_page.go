package service

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	shareTitle       = "カララントピッカー"
	shareDescription = "FF14のカララントの組み合わせを配色理論に基づいて提案するツール"
)

// The page is a redirect stub: crawlers read the preview tags, browsers
// follow the meta refresh, and the script covers agents that render the body
// before honoring the refresh. Both redirects point at the same URL.
var shareTemplate = template.Must(template.New("share").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>{{.Title}}</title>
<meta property="og:title" content="{{.Title}}" />
<meta property="og:description" content="{{.Description}}" />
<meta property="og:site_name" content="{{.Title}}" />
<meta property="og:image" content="{{.ImageURL}}"/>
<meta property="og:type" content="website" />
<meta name="twitter:card" content="summary_large_image"/>
<meta name="twitter:title" content="{{.Title}}" />
<meta name="twitter:description" content="{{.Description}}" />
<meta name="twitter:image" content="{{.ImageURL}}"/>
<link rel="canonical" href="{{.TargetURL}}"/>
<meta name="robots" content="noindex,follow"/>
<meta http-equiv="refresh" content="0;url={{.TargetURL}}"/>
</head>
<body style="background:#0b0d10;color:#fff;display:grid;place-items:center;height:100vh">
<p>Redirecting… <a href="{{.TargetURL}}">open</a></p>
<script>location.replace({{.TargetURL}})</script>
</body></html>`))

type sharePageData struct {
	Title       string
	Description string
	ImageURL    string
	TargetURL   string
}

// RenderShareHTML renders the social preview page for imageURL that
// redirects to targetURL
func RenderShareHTML(imageURL, targetURL string) (string, error) {
	data := sharePageData{
		Title:       shareTitle,
		Description: shareDescription,
		ImageURL:    imageURL,
		TargetURL:   targetURL,
	}

	var buf bytes.Buffer
	if err := shareTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute share template: %w", err)
	}
	return buf.String(), nil
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"colorant-og/models"
	"colorant-og/utils"
)

const browserRenderTimeout = 15 * time.Second

var layoutTemplate = template.Must(template.New("layout").Parse(`{{define "node"}}<div style="{{.Style}}">{{range .Children}}{{template "node" .}}{{end}}</div>{{end}}<!doctype html>
<html><head><meta charset="utf-8"/><style>html,body{margin:0;padding:0;overflow:hidden}</style></head>
<body>{{template "node" .}}</body></html>`))

// layoutView is a LayoutNode with its validated inline style
type layoutView struct {
	Style    template.CSS
	Children []layoutView
}

// BrowserRasterizer renders layouts as nested flex boxes in headless Chrome
// and screenshots the viewport.
// Implements RasterizerInterface
type BrowserRasterizer struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	logger        *zap.Logger

	// hooks around chromedp, replaced in tests
	startBrowser func(ctx context.Context) error
	newTab       func(parent context.Context) (context.Context, context.CancelFunc)

	startMu sync.Mutex
	started bool
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewBrowserRasterizer prepares a Chrome allocator and a browser context.
// The browser process is started by the first render and shared by later
// ones; each render opens its own tab.
func NewBrowserRasterizer(chromePath string, logger *zap.Logger) *BrowserRasterizer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("hide-scrollbars", true),
	)
	if path := detectChromePath(chromePath); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	} else {
		logger.Warn("No Chrome executable found, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return &BrowserRasterizer{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		logger:        logger,
		startBrowser: func(ctx context.Context) error {
			return chromedp.Run(ctx)
		},
		newTab: func(parent context.Context) (context.Context, context.CancelFunc) {
			return chromedp.NewContext(parent)
		},
	}
}

// ensureBrowser launches Chrome once. A failed launch is retried by the
// next render.
func (b *BrowserRasterizer) ensureBrowser() error {
	b.startMu.Lock()
	defer b.startMu.Unlock()

	if b.started {
		return nil
	}
	if err := b.startBrowser(b.browserCtx); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	b.started = true
	b.logger.Info("✓ Headless browser started")
	return nil
}

// Ensure BrowserRasterizer implements RasterizerInterface
var _ RasterizerInterface = (*BrowserRasterizer)(nil)

// Render loads the layout document into a fresh tab and captures it
func (b *BrowserRasterizer) Render(ctx context.Context, layout models.Layout) ([]byte, error) {
	html, err := RenderLayoutHTML(layout)
	if err != nil {
		return nil, err
	}

	if err := b.ensureBrowser(); err != nil {
		return nil, err
	}

	tabCtx, cancelTab := b.newTab(b.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, browserRenderTimeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancelTimeout)
	defer stop()

	var buf []byte
	err = chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(layout.Width), int64(layout.Height)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture layout screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("empty screenshot")
	}

	b.logger.Debug("📸 Layout captured", zap.Int("width", layout.Width), zap.Int("height", layout.Height), zap.Int("bytes", len(buf)))
	return buf, nil
}

// Close shuts the browser down
func (b *BrowserRasterizer) Close() {
	b.browserCancel()
	b.allocCancel()
}

// RenderLayoutHTML renders layout as a flex box document
func RenderLayoutHTML(layout models.Layout) (string, error) {
	root, err := buildLayoutView(layout.Root, true)
	if err != nil {
		return "", err
	}
	root.Style = template.CSS(fmt.Sprintf("width:%dpx;height:%dpx;", layout.Width, layout.Height)) + root.Style

	var buf bytes.Buffer
	if err := layoutTemplate.Execute(&buf, root); err != nil {
		return "", fmt.Errorf("failed to execute layout template: %w", err)
	}
	return buf.String(), nil
}

func buildLayoutView(node models.LayoutNode, root bool) (layoutView, error) {
	style := "display:flex;"
	if !root {
		style += "flex:" + strconv.FormatFloat(node.Weight, 'f', -1, 64) + ";"
	}

	if node.IsLeaf() {
		// parse and reformat so only well-formed colors reach the stylesheet
		c, err := utils.HexToColor(node.Color)
		if err != nil {
			return layoutView{}, err
		}
		style += "background-color:" + utils.RGBToHex(int(c.R), int(c.G), int(c.B)) + ";"
		return layoutView{Style: template.CSS(style)}, nil
	}

	direction := models.DirectionRow
	if node.Direction == models.DirectionColumn {
		direction = models.DirectionColumn
	}
	style += "flex-direction:" + string(direction) + ";"

	view := layoutView{Style: template.CSS(style)}
	for _, child := range node.Children {
		childView, err := buildLayoutView(child, false)
		if err != nil {
			return layoutView{}, err
		}
		view.Children = append(view.Children, childView)
	}
	return view, nil
}

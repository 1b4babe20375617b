package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"colorant-og/models"
	"colorant-og/utils"
)

const (
	// errorBackground is the fill of the static error image
	errorBackground = "#1a1a1a"
	// errorTitle is the single line drawn on the error image
	errorTitle = "FFXIV Colorant Picker"
	// errorTitleScale enlarges the 7x13 bitmap face to a readable size
	errorTitleScale = 4
)

// ImagingRasterizer paints layouts in-process with solid color tiles
// Implements RasterizerInterface
type ImagingRasterizer struct{}

// NewImagingRasterizer creates a new ImagingRasterizer
func NewImagingRasterizer() *ImagingRasterizer {
	return &ImagingRasterizer{}
}

// Ensure ImagingRasterizer implements RasterizerInterface
var _ RasterizerInterface = (*ImagingRasterizer)(nil)

// Render fills every region of layout and encodes the canvas as PNG
func (r *ImagingRasterizer) Render(ctx context.Context, layout models.Layout) ([]byte, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", layout.Width, layout.Height)
	}

	canvas := imaging.New(layout.Width, layout.Height, color.NRGBA{A: 0xff})
	for _, region := range LayoutRegions(layout) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fill, err := utils.HexToColor(region.Color)
		if err != nil {
			return nil, err
		}
		if region.Rect.Dx() <= 0 || region.Rect.Dy() <= 0 {
			continue
		}
		tile := imaging.New(region.Rect.Dx(), region.Rect.Dy(), fill)
		canvas = imaging.Paste(canvas, tile, image.Pt(region.Rect.MinX, region.Rect.MinY))
	}

	return encodePNG(canvas)
}

// RenderErrorImage draws the dark fallback card with the centered title
func (r *ImagingRasterizer) RenderErrorImage(width, height int) ([]byte, error) {
	bg, err := utils.HexToColor(errorBackground)
	if err != nil {
		return nil, err
	}
	canvas := imaging.New(width, height, bg)

	face := basicfont.Face7x13
	drawer := &font.Drawer{Face: face}
	textWidth := drawer.MeasureString(errorTitle).Ceil()
	textHeight := face.Metrics().Height.Ceil()

	text := imaging.New(textWidth, textHeight, color.Transparent)
	drawer.Dst = text
	drawer.Src = image.NewUniform(color.White)
	drawer.Dot = fixed.P(0, face.Metrics().Ascent.Ceil())
	drawer.DrawString(errorTitle)

	scaled := imaging.Resize(text, textWidth*errorTitleScale, textHeight*errorTitleScale, imaging.NearestNeighbor)
	pos := image.Pt((width-scaled.Bounds().Dx())/2, (height-scaled.Bounds().Dy())/2)
	canvas = imaging.Overlay(canvas, scaled, pos, 1.0)

	return encodePNG(canvas)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
)

// maxPNGSide caps either raster dimension.
const maxPNGSide = 16384

// RenderPNG rasterizes elements. Image elements are drawn as placeholders;
// their sources are never fetched.
func RenderPNG(elements []canvas.Element, opts ...Option) ([]byte, error) {
	r := newRenderer(opts)
	frame := r.frame(elements)

	w := int(math.Ceil(frame.Width * r.scale))
	h := int(math.Ceil(frame.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to export")
	}
	if w > maxPNGSide || h > maxPNGSide {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas too large to rasterize (%dx%d)", w, h)
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font")
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    labelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	dc.SetHexColor("#f3f4f6")
	dc.Clear()
	dc.SetFontFace(face)

	for _, b := range r.blocks(elements, frame) {
		drawBlock(dc, b, r.hideNames)
	}
	for _, g := range r.guides {
		drawGuide(dc, g, frame)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func drawBlock(dc *gg.Context, b block, hideNames bool) {
	radius := 8.0
	if b.el.Type == canvas.Title || b.el.Type == canvas.Text {
		radius = 0
	}

	if b.palette.Fill != "none" {
		dc.SetHexColor(b.palette.Fill)
		dc.DrawRoundedRectangle(b.x, b.y, b.w, b.h, radius)
		dc.Fill()
	}
	dc.SetLineWidth(2)
	dc.SetHexColor(b.palette.Stroke)
	dc.DrawRoundedRectangle(b.x, b.y, b.w, b.h, radius)
	dc.Stroke()

	if b.el.Type == canvas.Image {
		// Placeholder cross.
		dc.SetLineWidth(1)
		dc.DrawLine(b.x, b.y, b.x+b.w, b.y+b.h)
		dc.DrawLine(b.x+b.w, b.y, b.x, b.y+b.h)
		dc.Stroke()
	}

	if !hideNames && b.label != "" {
		dc.SetHexColor(b.palette.Text)
		dc.DrawStringAnchored(b.label, b.x+b.w/2, b.y+b.h/2, 0.5, 0.35)
	}

	if b.selected {
		dc.SetHexColor(selectionColor)
		dc.SetLineWidth(2)
		dc.SetDash(4, 2)
		dc.DrawRectangle(b.x-2, b.y-2, b.w+4, b.h+4)
		dc.Stroke()
		dc.SetDash()
	}
}

func drawGuide(dc *gg.Context, g Guide, frame geom.Rect) {
	dc.SetHexColor(guideColor)
	dc.SetLineWidth(1)
	if g.Axis == geom.Horizontal {
		x := g.Line - frame.Left
		dc.DrawLine(x, 0, x, frame.Height)
	} else {
		y := g.Line - frame.Top
		dc.DrawLine(0, y, frame.Width, y)
	}
	dc.Stroke()
}

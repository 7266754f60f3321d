package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/geom"
)

const (
	fontFamily    = "Helvetica, Arial, sans-serif"
	labelFontSize = 12.0
)

// RenderSVG renders elements as an SVG document.
func RenderSVG(elements []canvas.Element, opts ...Option) []byte {
	r := newRenderer(opts)
	frame := r.frame(elements)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frame.Width, frame.Height, frame.Width, frame.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#f3f4f6"/>`+"\n", frame.Width, frame.Height)

	for _, b := range r.blocks(elements, frame) {
		renderBlock(&buf, b, r.hideNames)
	}
	for _, g := range r.guides {
		renderGuide(&buf, g, frame)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, b block, hideNames bool) {
	fmt.Fprintf(buf, `  <g id="%s" data-type="%s" data-z="%d">`+"\n", escapeXML(b.el.ID), b.el.Type, b.el.Geometry.ZIndex)

	rx := 8.0
	if b.el.Type == canvas.Title || b.el.Type == canvas.Text {
		rx = 0
	}
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		b.x, b.y, b.w, b.h, rx, b.palette.Fill, b.palette.Stroke)

	if b.el.Type == canvas.Image {
		if src := b.el.Meta(canvas.MetaSrc); src != "" {
			fmt.Fprintf(buf, `    <image href="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" preserveAspectRatio="xMidYMid slice"/>`+"\n",
				escapeXML(src), b.x, b.y, b.w, b.h)
		}
	}

	if !hideNames && b.label != "" {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			b.x+b.w/2, b.y+b.h/2, fontFamily, labelFontSize, b.palette.Text, escapeXML(b.label))
	}

	if b.el.IsLocked {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="10" fill="#9ca3af">locked</text>`+"\n",
			b.x+4, b.y+12, fontFamily)
	}
	if b.selected {
		fmt.Fprintf(buf, `    <rect class="selection" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2" stroke-dasharray="4 2"/>`+"\n",
			b.x-2, b.y-2, b.w+4, b.h+4, selectionColor)
	}
	buf.WriteString("  </g>\n")
}

func renderGuide(buf *bytes.Buffer, g Guide, frame geom.Rect) {
	if g.Axis == geom.Horizontal {
		x := g.Line - frame.Left
		fmt.Fprintf(buf, `  <line class="guide" x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, x, frame.Height, guideColor)
		return
	}
	y := g.Line - frame.Top
	fmt.Fprintf(buf, `  <line class="guide" x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		y, frame.Width, y, guideColor)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

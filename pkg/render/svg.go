package render

import (
	"bytes"
	"fmt"
	"math"
)

// Drawing constants shared by both diagrams.
const (
	fontFamily = "Helvetica, Arial, sans-serif"

	colorLine       = "#1a1a1a"
	colorDim        = "#444444"
	colorInsulation = "#e8e4da"
	colorWarning    = "#b03030"
)

const arrowDefs = `  <defs>
    <marker id="arrow-end" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">
      <path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>
    </marker>
  </defs>
`

// Option configures a diagram renderer.
type Option func(*options)

type options struct {
	unit     string
	widthPx  float64
	fontSize float64
}

// WithUnit sets the length unit used in dimension labels (default "in").
func WithUnit(unit string) Option {
	return func(o *options) { o.unit = unit }
}

// WithWidth sets the pixel width of the rendered diagram (default 720).
func WithWidth(px float64) Option {
	return func(o *options) { o.widthPx = px }
}

func newOptions(opts []Option) options {
	o := options{unit: "in", widthPx: 720, fontSize: 13}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// canvas maps model coordinates (y up) onto SVG pixel coordinates (y down)
// and accumulates the document body.
type canvas struct {
	buf   bytes.Buffer
	scale float64 // px per model unit
	minX  float64 // model x mapped to px 0
	maxY  float64 // model y mapped to px 0
	wPx   float64
	hPx   float64
	font  float64
}

// newCanvas builds a canvas spanning the model rectangle [minX,maxX]x[minY,maxY]
// rendered at widthPx pixels wide.
func newCanvas(minX, minY, maxX, maxY, widthPx, fontSize float64) *canvas {
	scale := widthPx / (maxX - minX)
	return &canvas{
		scale: scale,
		minX:  minX,
		maxY:  maxY,
		wPx:   widthPx,
		hPx:   (maxY - minY) * scale,
		font:  fontSize,
	}
}

func (c *canvas) px(x, y float64) (float64, float64) {
	return (x - c.minX) * c.scale, (c.maxY - y) * c.scale
}

func (c *canvas) open(title string) {
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		c.wPx, c.hPx, c.wPx, c.hPx, fontFamily)
	fmt.Fprintf(&c.buf, arrowDefs, colorDim)
	fmt.Fprintf(&c.buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", c.wPx, c.hPx)
	if title != "" {
		fmt.Fprintf(&c.buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
			c.wPx/2, c.font*1.8, c.font*1.25, colorLine, title)
	}
}

func (c *canvas) close() []byte {
	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

func (c *canvas) circle(x, y, r float64, stroke string, strokeW float64) {
	px, py := c.px(x, y)
	fmt.Fprintf(&c.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		px, py, r*c.scale, stroke, strokeW)
}

// annulus draws a filled ring between two radii as one fat-stroked circle.
func (c *canvas) annulus(x, y, rInner, rOuter float64, fill string) {
	if rOuter <= rInner {
		return
	}
	px, py := c.px(x, y)
	mid := (rInner + rOuter) / 2
	fmt.Fprintf(&c.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		px, py, mid*c.scale, fill, (rOuter-rInner)*c.scale)
}

func (c *canvas) polygon(pts [][2]float64, stroke string, strokeW float64) {
	c.buf.WriteString(`  <polygon points="`)
	for i, p := range pts {
		if i > 0 {
			c.buf.WriteByte(' ')
		}
		px, py := c.px(p[0], p[1])
		fmt.Fprintf(&c.buf, "%.2f,%.2f", px, py)
	}
	fmt.Fprintf(&c.buf, `" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n", stroke, strokeW)
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string, strokeW float64, dashed bool) {
	px1, py1 := c.px(x1, y1)
	px2, py2 := c.px(x2, y2)
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(&c.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
		px1, py1, px2, py2, stroke, strokeW, dash)
}

func (c *canvas) text(x, y float64, anchor, label string, size float64, fill string) {
	px, py := c.px(x, y)
	fmt.Fprintf(&c.buf, `  <text x="%.2f" y="%.2f" text-anchor="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		px, py, anchor, size, fill, label)
}

// dim draws an engineering-style dimension: extension lines from p1/p2 to the
// offset measuring line, double-arrowed measuring line, centered label.
func (c *canvas) dim(x1, y1, x2, y2, offX, offY float64, label string, labelOffX, labelOffY float64) {
	q1x, q1y := x1+offX, y1+offY
	q2x, q2y := x2+offX, y2+offY

	if offX != 0 || offY != 0 {
		c.line(x1, y1, q1x, q1y, colorDim, 1, false)
		c.line(x2, y2, q2x, q2y, colorDim, 1, false)
	}

	p1x, p1y := c.px(q1x, q1y)
	p2x, p2y := c.px(q2x, q2y)
	fmt.Fprintf(&c.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1" marker-start="url(#arrow-end)" marker-end="url(#arrow-end)"/>`+"\n",
		p1x, p1y, p2x, p2y, colorDim)

	c.text((q1x+q2x)/2+labelOffX, (q1y+q2y)/2+labelOffY, "middle", label, c.font, colorDim)
}

// angleArc draws a circular arc from startDeg to endDeg (model-space degrees,
// counter-clockwise) around a center, with a label placed outside the arc.
func (c *canvas) angleArc(cx, cy, r, startDeg, endDeg float64, label string, labelDeg float64) {
	sx := cx + r*math.Cos(startDeg*math.Pi/180)
	sy := cy + r*math.Sin(startDeg*math.Pi/180)
	ex := cx + r*math.Cos(endDeg*math.Pi/180)
	ey := cy + r*math.Sin(endDeg*math.Pi/180)

	psx, psy := c.px(sx, sy)
	pex, pey := c.px(ex, ey)
	// Model-space CCW maps to sweep-flag 0 after the y flip.
	fmt.Fprintf(&c.buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
		psx, psy, r*c.scale, r*c.scale, pex, pey, colorDim)

	lx := cx + 1.6*r*math.Cos(labelDeg*math.Pi/180)
	ly := cy + 1.6*r*math.Sin(labelDeg*math.Pi/180)
	c.text(lx, ly, "middle", label, c.font*0.85, colorDim)
}

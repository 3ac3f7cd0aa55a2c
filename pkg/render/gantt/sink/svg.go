package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/pfeilbach/svgantt/pkg/render/gantt/scene"
)

// defaultPrecision bounds coordinate decimals in the emitted SVG.
const defaultPrecision = 2

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	precision int
}

// WithPrecision sets the number of coordinate decimal places. Trailing
// zeros are always trimmed; pass -1 for the shortest exact form.
func WithPrecision(digits int) SVGOption {
	return func(r *svgRenderer) { r.precision = digits }
}

// RenderSVG serializes a scene tree to an SVG document.
func RenderSVG(t *scene.Tree, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		r.num(t.Width), r.num(t.Height), r.num(t.Width), r.num(t.Height))
	if t.Background != "" {
		fmt.Fprintf(&buf, ` style="background-color: %s;"`, t.Background)
	}
	buf.WriteString(">\n")

	if t.Styles != "" {
		fmt.Fprintf(&buf, "<style>\n%s\n</style>\n", t.Styles)
	}
	for _, n := range t.Nodes {
		r.renderNode(&buf, n)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{precision: defaultPrecision}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r svgRenderer) renderNode(buf *bytes.Buffer, n scene.Node) {
	switch n := n.(type) {
	case scene.Line:
		fmt.Fprintf(buf, `<line class="%s" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			n.Class, r.num(n.X1), r.num(n.Y1), r.num(n.X2), r.num(n.Y2))
	case scene.Rect:
		fmt.Fprintf(buf, `<rect class="%s" x="%s" y="%s" rx="%s" ry="%s" width="%s" height="%s"/>`+"\n",
			n.Class, r.num(n.X), r.num(n.Y), r.num(n.RX), r.num(n.RX), r.num(n.W), r.num(n.H))
	case scene.Diamond:
		fmt.Fprintf(buf, `<path class="%s" d="M%s,%s l%s,%s l%s,%s l%s,%s l%s,%s"/>`+"\n",
			n.Class,
			r.num(n.CX-n.R), r.num(n.Y+n.R),
			r.num(n.R), r.num(-n.R),
			r.num(n.R), r.num(n.R),
			r.num(-n.R), r.num(n.R),
			r.num(-n.R), r.num(-n.R))
	case scene.Text:
		fmt.Fprintf(buf, `<text class="%s" x="%s" y="%s">%s</text>`+"\n",
			n.Class, r.num(n.X), r.num(n.Y), escapeXML(n.Content))
	case scene.Group:
		if n.Class != "" {
			fmt.Fprintf(buf, "<g class=\"%s\">\n", n.Class)
		} else {
			buf.WriteString("<g>\n")
		}
		for _, child := range n.Nodes {
			r.renderNode(buf, child)
		}
		buf.WriteString("</g>\n")
	}
}

// num formats a coordinate without trailing noise.
func (r svgRenderer) num(v float64) string {
	s := strconv.FormatFloat(v, 'f', r.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

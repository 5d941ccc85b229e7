package pages

import (
	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/text"
)

// Size is a page size in points.
type Size struct {
	Width  float64
	Height float64
}

// Common page sizes.
var (
	A3     = Size{Width: 841.89, Height: 1190.55}
	A4     = Size{Width: 595.28, Height: 841.89}
	A5     = Size{Width: 419.53, Height: 595.28}
	Letter = Size{Width: 612, Height: 792}
	Legal  = Size{Width: 612, Height: 1008}
)

// Landscape returns the size rotated a quarter turn.
func (s Size) Landscape() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Margins inset the writable content area from the page edges, in points.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Uniform returns equal margins on all four sides.
func Uniform(m float64) Margins {
	return Margins{Left: m, Right: m, Top: m, Bottom: m}
}

// Resource contributes a resource dictionary during assembly. Fonts and
// image XObjects both satisfy it.
type Resource interface {
	Resource(w *core.Writer) (core.Object, error)
}

// Page is one page under construction: its geometry, accumulated content
// stream, flow cursor, and the resources its content references.
type Page struct {
	size    Size
	margins Margins
	cursor  text.Cursor
	content []byte
	fonts   map[core.Name]Resource
	images  map[core.Name]Resource
}

// New creates an empty page. The flow cursor starts at the top of the
// content area.
func New(size Size, margins Margins) *Page {
	p := &Page{
		size:    size,
		margins: margins,
		fonts:   make(map[core.Name]Resource),
		images:  make(map[core.Name]Resource),
	}
	p.cursor.Y = p.Bounds().Top
	return p
}

// Size returns the page dimensions.
func (p *Page) Size() Size {
	return p.size
}

// Bounds returns the absolute box of the writable content area.
func (p *Page) Bounds() text.Box {
	return text.Box{
		Left:   p.margins.Left,
		Right:  p.size.Width - p.margins.Right,
		Bottom: p.margins.Bottom,
		Top:    p.size.Height - p.margins.Top,
	}
}

// Cursor returns the page's flow cursor.
func (p *Page) Cursor() *text.Cursor {
	return &p.cursor
}

// Translate converts a point relative to the content area into absolute
// page coordinates.
func (p *Page) Translate(pt text.Point) (float64, float64) {
	b := p.Bounds()
	return b.Left + pt.X, b.Bottom + pt.Y
}

// AddContent appends raw tokens to the page's content stream.
func (p *Page) AddContent(data []byte) {
	p.content = append(p.content, data...)
}

// Content returns the accumulated content stream bytes.
func (p *Page) Content() []byte {
	return p.content
}

// UseFont records that the content references a font under name.
func (p *Page) UseFont(name core.Name, f Resource) {
	p.fonts[name] = f
}

// UseImage records that the content references an image XObject under name.
func (p *Page) UseImage(name core.Name, img Resource) {
	p.images[name] = img
}

// Package quill provides a fluent API for generating PDF documents with
// flowed, styled text.
//
// Basic usage:
//
//	doc := quill.New().SetFont("Helvetica", 12).
//	    Text("Hello, world.")
//	err := doc.WriteFile("hello.pdf")
//
// Text flows into the page's content area, wrapping at word boundaries
// and starting new pages as needed. Inline <b> and <i> tags switch the
// face when a font family is active:
//
//	doc := quill.New().SetFont("Times", 11).
//	    Text("A <b>bold</b> claim, made <i>quietly</i>.")
//
// For precise placement, pass TextOptions with an explicit position:
//
//	doc.Text("Page 1", quill.TextOptions{At: &quill.Point{X: 0, Y: 0}})
//
// Configuration and content methods chain; the first error stops later
// calls and surfaces from the terminal operations Bytes, WriteTo, and
// WriteFile.
package quill

import (
	"fmt"

	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/font"
	"github.com/tsawler/quill/pages"
	"github.com/tsawler/quill/text"
)

// Point is a position relative to the page's content area.
type Point = text.Point

// Alignment selects the horizontal placement of flowed lines.
type Alignment = text.Alignment

// Alignment values for TextOptions.
const (
	AlignLeft   = text.AlignLeft
	AlignCenter = text.AlignCenter
	AlignRight  = text.AlignRight
)

// Document is a PDF file under construction. Methods chain fluently;
// after the first error the remaining calls are no-ops and the error
// comes back from the terminal operations. A Document is not safe for
// concurrent use.
type Document struct {
	opts  Options
	pages []*pages.Page

	fontNames  map[*font.Font]core.Name
	imageNames map[*pages.Image]core.Name

	active     *font.Font
	activeName core.Name
	activeSize float64
	family     *font.Family

	err error
}

// New creates an empty document with default options: A4 pages, one-inch
// margins, compressed content streams, and Helvetica at 12 points.
func New() *Document {
	d := &Document{
		opts:       defaultOptions(),
		fontNames:  make(map[*font.Font]core.Name),
		imageNames: make(map[*pages.Image]core.Name),
	}
	return d.SetFont("Helvetica", 12)
}

// Err returns the first error a chained call produced, if any.
func (d *Document) Err() error {
	return d.err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	data := quill.Must(quill.New().Text("hi").Bytes())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// PageSize sets the dimensions of subsequently created pages.
func (d *Document) PageSize(size pages.Size) *Document {
	if d.err != nil {
		return d
	}
	d.opts.pageSize = size
	return d
}

// Margins sets the content-area insets of subsequently created pages.
func (d *Document) Margins(m pages.Margins) *Document {
	if d.err != nil {
		return d
	}
	d.opts.margins = m
	return d
}

// Compress controls flate compression of content streams. It is on by
// default; turning it off keeps the output readable.
func (d *Document) Compress(on bool) *Document {
	if d.err != nil {
		return d
	}
	d.opts.compress = on
	return d
}

// AddPage ends the current page and starts a new one with the configured
// size and margins.
func (d *Document) AddPage() *Document {
	if d.err != nil {
		return d
	}
	d.pages = append(d.pages, pages.New(d.opts.pageSize, d.opts.margins))
	return d
}

// SetFont selects the active font and size. The name may be a Standard 14
// face ("Helvetica-Bold", "Times-Roman") or a family ("Helvetica",
// "Times", "Courier"); selecting a family enables the inline <b>/<i>
// style tags for subsequent Text calls.
func (d *Document) SetFont(name string, size float64) *Document {
	if d.err != nil {
		return d
	}

	if fam, err := font.StandardFamily(name); err == nil {
		d.family = fam
		d.setFace(fam.Face(text.StyleNormal))
	} else if f, err := font.Standard(name); err == nil {
		d.family = nil
		d.setFace(f)
	} else {
		d.err = fmt.Errorf("unknown font or family %q", name)
		return d
	}

	if size > 0 {
		d.activeSize = size
	}
	return d
}

// SetTrueTypeFont loads a TrueType font, embeds it in the output, and
// makes it the active font. An empty name uses the font's own name.
func (d *Document) SetTrueTypeFont(name string, data []byte, size float64) *Document {
	if d.err != nil {
		return d
	}

	f, err := font.LoadTrueType(name, data)
	if err != nil {
		d.err = err
		return d
	}
	d.family = nil
	d.setFace(f)
	if size > 0 {
		d.activeSize = size
	}
	return d
}

// setFace makes f the active font, assigning its resource name on first use.
func (d *Document) setFace(f *font.Font) {
	name, ok := d.fontNames[f]
	if !ok {
		name = core.Name(fmt.Sprintf("F%d", len(d.fontNames)+1))
		d.fontNames[f] = name
	}
	d.active = f
	d.activeName = name
}

// currentPage returns the page being written, creating the first page on
// demand so configuration can precede content.
func (d *Document) currentPage() *pages.Page {
	if len(d.pages) == 0 {
		d.pages = append(d.pages, pages.New(d.opts.pageSize, d.opts.margins))
	}
	return d.pages[len(d.pages)-1]
}

// Cursor returns the flow cursor of the current page.
func (d *Document) Cursor() *text.Cursor {
	return d.currentPage().Cursor()
}

// Bounds returns the content area of the current page.
func (d *Document) Bounds() text.Box {
	return d.currentPage().Bounds()
}

// Translate converts a content-area point to absolute page coordinates.
func (d *Document) Translate(p text.Point) (float64, float64) {
	return d.currentPage().Translate(p)
}

// StartNewPage begins a new page during flowing; pagination in the text
// engine calls this when a line would cross the bottom margin.
func (d *Document) StartNewPage() {
	d.pages = append(d.pages, pages.New(d.opts.pageSize, d.opts.margins))
}

// AddContent appends tokens to the current page and records the active
// font in the page's resources.
func (d *Document) AddContent(data []byte) {
	p := d.currentPage()
	if d.active != nil {
		p.UseFont(d.activeName, d.active)
	}
	p.AddContent(data)
}

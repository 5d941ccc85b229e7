package quill

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tsawler/quill/contentstream"
	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/pages"
	"github.com/tsawler/quill/text"
)

// Text writes body with the active font. Without options the text flows
// from the cursor: wrapped to the content area, left-aligned, starting
// new pages as needed. Inline <b>/<i> tags switch faces when a font
// family is active. Empty input is a no-op.
func (d *Document) Text(body string, opts ...TextOptions) *Document {
	if d.err != nil {
		return d
	}

	var o TextOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	size := o.Size
	if size <= 0 {
		size = d.activeSize
	}

	if d.family != nil && text.ContainsTags(body) {
		return d.styledText(body, o, size)
	}

	d.err = text.Flow(d, d.active, text.Request{
		Text:         body,
		Font:         d.activeName,
		Size:         size,
		At:           o.At,
		Kerning:      o.Kerning,
		Align:        o.Align,
		Spacing:      o.Spacing,
		HoldPosition: o.HoldPosition,
	})
	return d
}

// styledText splits body into style segments and flows them as a chain of
// held continuations, switching the face per segment.
func (d *Document) styledText(body string, o TextOptions, size float64) *Document {
	segments := text.Segments(body)
	for i, seg := range segments {
		d.setFace(d.family.Face(seg.Style))

		req := text.Request{
			Text:         seg.Text,
			Font:         d.activeName,
			Size:         size,
			Kerning:      o.Kerning,
			Align:        o.Align,
			Spacing:      o.Spacing,
			HoldPosition: i < len(segments)-1 || o.HoldPosition,
		}
		if i == 0 {
			req.At = o.At
		}

		if d.err = text.Flow(d, d.active, req); d.err != nil {
			return d
		}
	}
	return d
}

// Image places a JPEG at (x, y) in the content area, scaled to w by h
// points. The position is the bottom-left corner of the image.
func (d *Document) Image(img *pages.Image, x, y, w, h float64) *Document {
	if d.err != nil {
		return d
	}

	name, ok := d.imageNames[img]
	if !ok {
		name = core.Name(fmt.Sprintf("Im%d", len(d.imageNames)+1))
		d.imageNames[img] = name
	}

	p := d.currentPage()
	p.UseImage(name, img)
	ax, ay := p.Translate(text.Point{X: x, Y: y})
	p.AddContent(contentstream.EncodeImagePlacement(name, ax, ay, w, h))
	return d
}

// Bytes assembles and serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}

	w := core.NewWriter()
	w.SetInfo(w.Add(core.Dict{
		"Producer":     core.String("quill"),
		"CreationDate": core.String(time.Now().Format("D:20060102150405-07'00'")),
	}))

	d.currentPage() // a document always has at least one page
	if err := pages.Assemble(w, d.pages, d.opts.compress); err != nil {
		return nil, err
	}
	return w.Bytes()
}

// WriteTo serializes the document to out.
func (d *Document) WriteTo(out io.Writer) (int64, error) {
	data, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := out.Write(data)
	return int64(n), err
}

// WriteFile serializes the document to a file.
func (d *Document) WriteFile(filename string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

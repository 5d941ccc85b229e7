package text

import (
	"strings"

	"github.com/tsawler/quill/contentstream"
	"github.com/tsawler/quill/core"
)

// Alignment selects the horizontal placement of each flowed line within
// the content box.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Point is a box-relative coordinate.
type Point struct {
	X, Y float64
}

// Box describes the absolute bounds of the writable content area.
type Box struct {
	Left, Right, Bottom, Top float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Cursor is the flow state attached to a content box: the current vertical
// writing position and the horizontal carry left by a hold-position call.
// It persists across Flow calls on the same box so a paragraph can be
// continued where the previous call left off. Exactly one writer may
// mutate a given cursor at a time.
type Cursor struct {
	Y       float64
	XOffset float64
}

// Line is one wrapped line ready for placement: the source text, the
// encoded show-text payload, and the rendered width in points.
type Line struct {
	Text    string
	Payload core.Object
	Width   float64
}

// Metrics is the font-metrics capability the flow engine depends on.
// It is implemented by font.Font and by deterministic stubs in tests.
type Metrics interface {
	// HasKerningData reports whether the font carries kerning pairs,
	// which decides the kerning default when a request leaves it unset.
	HasKerningData() bool

	// WidthOf returns the rendered width of s in points at the given size.
	WidthOf(s string, size float64, kerning bool) float64

	// Height returns the ascender extent in points at the given size.
	Height(size float64) float64

	// Descender returns the below-baseline extent in points at the given
	// size (a positive number, scaled from thousandths of em).
	Descender(size float64) float64

	// ConvertText encodes s for the output stream, substituting kerning
	// pairs into the array payload form when kerning is enabled. Runes
	// outside the font's repertoire fail with an encoding error.
	ConvertText(s string, kerning bool) (core.Object, error)

	// NaiveWrap greedily wraps s into lines no wider than availableWidth,
	// with the first line shortened by startOffset. The returned lines
	// cover the entire input in order.
	NaiveWrap(s string, availableWidth, size float64, kerning bool, startOffset float64) ([]Line, error)
}

// Surface is the page/graphics capability the flow engine writes to.
// It is implemented by the root Document and by stubs in tests.
type Surface interface {
	// Cursor returns the flow cursor of the current content box.
	Cursor() *Cursor

	// Bounds returns the absolute bounds of the current content box.
	Bounds() Box

	// Translate converts a box-relative point to absolute coordinates.
	Translate(p Point) (x, y float64)

	// StartNewPage begins a new page; Bounds and Cursor then refer to it.
	StartNewPage()

	// AddContent appends raw tokens to the current page's content stream.
	AddContent(data []byte)
}

// Request describes one text placement call. Font and Size must be
// resolved by the caller; Kerning nil means "use the font's default",
// Align zero value is left, Spacing zero means the descender-derived
// default inter-line gap.
type Request struct {
	Text         string
	Font         core.Name
	Size         float64
	At           *Point
	Kerning      *bool
	Align        Alignment
	Spacing      float64
	HoldPosition bool
	RenderMode   int
}

// Flow places req.Text on the surface. With an explicit position it emits
// exactly one run, untouched by wrapping, alignment, or pagination. Without
// one it wraps the text to the content box, aligns and paginates line by
// line, and leaves the cursor ready for the next call. Empty and
// all-whitespace input is a no-op.
func Flow(s Surface, m Metrics, req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return nil
	}

	kerning := m.HasKerningData()
	if req.Kerning != nil {
		kerning = *req.Kerning
	}

	if req.At != nil {
		return placeAt(s, m, req, kerning)
	}
	return flowInBox(s, m, req, kerning)
}

// placeAt handles fixed-position mode. When HoldPosition is set the cursor
// moves down one line height and the run's width becomes the horizontal
// carry, so a flowing call can pick up from here. Fixed mode never
// paginates; the cursor may end up below the box, and the next flowing
// call's own line advance starts the new page.
func placeAt(s Surface, m Metrics, req Request, kerning bool) error {
	payload, err := m.ConvertText(req.Text, kerning)
	if err != nil {
		return err
	}

	x, y := s.Translate(*req.At)
	s.AddContent(contentstream.EncodeTextRun(contentstream.TextRun{
		Font:       req.Font,
		Size:       req.Size,
		X:          x,
		Y:          y,
		Payload:    payload,
		Kerning:    kerning,
		RenderMode: req.RenderMode,
	}))

	if req.HoldPosition {
		cur := s.Cursor()
		cur.Y -= m.Height(req.Size) + m.Descender(req.Size)
		cur.XOffset = m.WidthOf(req.Text, req.Size, kerning)
	}
	return nil
}

// flowInBox handles flowing mode: wrap, then per line advance, align,
// paginate, and emit.
func flowInBox(s Surface, m Metrics, req Request, kerning bool) error {
	carry := s.Cursor().XOffset

	lines, err := m.NaiveWrap(req.Text, s.Bounds().Width(), req.Size, kerning, carry)
	if err != nil {
		return err
	}

	lineHeight := m.Height(req.Size) + m.Descender(req.Size)
	gap := req.Spacing
	if gap <= 0 {
		gap = m.Descender(req.Size)
	}

	// The cursor is re-read from the surface after every advance: a page
	// turn makes Cursor() refer to the new page's own state, and mutating
	// the old page's cursor would leave the surface back at the top.
	var lastTop, lastWidth float64
	for i, line := range lines {
		lastTop = s.Cursor().Y
		if advance(s, lineHeight) {
			lastTop = s.Bounds().Top
		}

		bounds := s.Bounds()
		var x float64
		switch req.Align {
		case AlignCenter:
			x = bounds.Left + carry + (bounds.Width()-line.Width)/2
		case AlignRight:
			x = bounds.Right - line.Width - carry
		default:
			x = bounds.Left + carry
		}

		if line.Text != "" {
			s.AddContent(contentstream.EncodeTextRun(contentstream.TextRun{
				Font:       req.Font,
				Size:       req.Size,
				X:          x,
				Y:          s.Cursor().Y,
				Payload:    line.Payload,
				Kerning:    kerning,
				RenderMode: req.RenderMode,
			}))
		}
		lastWidth = line.Width

		// The final gap is skipped under hold so the rewind below does not
		// race a page advance triggered by it. A gap that crosses the
		// bottom turns the page too, so a continuation page opened by a
		// gap has its first baseline one gap below the top.
		if i < len(lines)-1 || !req.HoldPosition {
			advance(s, gap)
		}

		// The carry only ever applies to the first line of a call.
		carry = 0
	}

	cur := s.Cursor()
	if req.HoldPosition {
		cur.Y = lastTop
		cur.XOffset = lastWidth
	} else {
		cur.XOffset = 0
	}
	return nil
}

// advance moves the current box's cursor down by dy, starting a new page
// first if the move would cross the bottom edge. After a page turn the
// advance applies to the new page's cursor, leaving it dy below the top.
// Reports whether a page turn happened.
func advance(s Surface, dy float64) bool {
	cur := s.Cursor()
	turned := false
	if cur.Y-dy < s.Bounds().Bottom {
		s.StartNewPage()
		cur = s.Cursor()
		cur.Y = s.Bounds().Top
		turned = true
	}
	cur.Y -= dy
	return turned
}

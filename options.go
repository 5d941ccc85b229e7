package quill

import (
	"github.com/tsawler/quill/pages"
)

// Options holds document-level configuration.
type Options struct {
	pageSize pages.Size
	margins  pages.Margins
	compress bool
}

// defaultOptions returns the document defaults.
func defaultOptions() Options {
	return Options{
		pageSize: pages.A4,
		margins:  pages.Uniform(72),
		compress: true,
	}
}

// TextOptions configures one Text call. The zero value flows left-aligned
// text at the active font size with the font's default line spacing.
type TextOptions struct {
	// At places the text at an exact position in the content area instead
	// of flowing it. No wrapping, alignment, or pagination applies.
	At *Point

	// Size overrides the active font size for this call. Zero keeps it.
	Size float64

	// Kerning overrides the kerning default, which is on exactly when the
	// active font carries kerning data.
	Kerning *bool

	// Align selects left, center, or right placement of flowed lines.
	Align Alignment

	// Spacing overrides the gap between lines in points. Zero uses the
	// font's descender extent.
	Spacing float64

	// HoldPosition keeps the cursor on the last written line so the next
	// call continues it instead of starting a new line.
	HoldPosition bool
}

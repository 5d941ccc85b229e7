package font

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/internal/filters"
)

// Font holds the metrics of one typeface and encodes text for it.
// All table values are in thousandths of an em, the AFM convention;
// the size-taking methods scale them to points.
type Font struct {
	BaseFont string

	widths    map[rune]float64
	kern      map[kernPair]float64
	ascender  float64
	descender float64 // negative, below the baseline

	symbolic bool // built-in encoding, no WinAnsi entry

	// Set for TrueType fonts only; the program gets embedded.
	program []byte
	bbox    [4]float64
}

// kernPair keys the kerning table on an adjacent rune pair.
type kernPair struct {
	left, right rune
}

// EncodingError reports a rune that cannot be represented in the font's
// WinAnsi encoding.
type EncodingError struct {
	Font string
	Rune rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("font %s: rune %q has no WinAnsi encoding", e.Font, e.Rune)
}

// Standard returns one of the Standard 14 fonts with its built-in metrics.
func Standard(name string) (*Font, error) {
	face, ok := standardFaces[name]
	if !ok {
		return nil, fmt.Errorf("unknown standard font %q", name)
	}
	return &Font{
		BaseFont:  name,
		widths:    face.widths,
		kern:      face.kern,
		ascender:  face.ascender,
		descender: face.descender,
		symbolic:  face.symbolic,
	}, nil
}

// HasKerningData reports whether the font carries any kerning pairs.
// It decides the kerning default for text placed with this font.
func (f *Font) HasKerningData() bool {
	return len(f.kern) > 0
}

// widthOfRune returns the advance of a single rune in thousandths of em.
func (f *Font) widthOfRune(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}
	return 500
}

// WidthOf returns the rendered width of s in points at the given size,
// including kerning adjustments when kerning is enabled.
func (f *Font) WidthOf(s string, size float64, kerning bool) float64 {
	var total float64
	var prev rune
	for i, r := range s {
		total += f.widthOfRune(r)
		if kerning && i > 0 {
			total += f.kern[kernPair{prev, r}]
		}
		prev = r
	}
	return total * size / 1000
}

// Height returns the ascender extent in points at the given size.
func (f *Font) Height(size float64) float64 {
	return f.ascender * size / 1000
}

// Descender returns the below-baseline extent in points at the given size,
// as a positive number.
func (f *Font) Descender(size float64) float64 {
	return -f.descender * size / 1000
}

// encode converts s to WinAnsi bytes, failing on the first rune the
// encoding cannot represent.
func (f *Font) encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return nil, &EncodingError{Font: f.BaseFont, Rune: r}
		}
		out = append(out, b)
	}
	return out, nil
}

// ConvertText encodes s as a show-text payload. Without kerning, or when
// no kerning pair applies, the result is a plain string shown with Tj.
// With kerning and at least one applicable pair, the result is the array
// form shown with TJ: strings interleaved with displacement adjustments
// in thousandths of em, where a positive number tightens the gap.
func (f *Font) ConvertText(s string, kerning bool) (core.Object, error) {
	encoded, err := f.encode(s)
	if err != nil {
		return nil, err
	}
	if !kerning || len(f.kern) == 0 {
		return core.String(encoded), nil
	}

	runes := []rune(s)
	var arr core.Array
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if k := f.kern[kernPair{runes[i], runes[i+1]}]; k != 0 {
			arr = append(arr, core.String(encoded[start:i+1]), core.Real(-k))
			start = i + 1
		}
	}
	if len(arr) == 0 {
		return core.String(encoded), nil
	}
	if start < len(encoded) {
		arr = append(arr, core.String(encoded[start:]))
	}
	return arr, nil
}

// Resource builds the font's resource dictionary. Standard fonts reference
// the viewer's built-in programs; TrueType fonts embed their program and
// descriptor as indirect objects through w.
func (f *Font) Resource(w *core.Writer) (core.Object, error) {
	if f.program == nil {
		dict := core.Dict{
			"Type":     core.Name("Font"),
			"Subtype":  core.Name("Type1"),
			"BaseFont": core.Name(f.BaseFont),
		}
		if !f.symbolic {
			dict.Set("Encoding", core.Name("WinAnsiEncoding"))
		}
		return dict, nil
	}
	return f.trueTypeResource(w)
}

// trueTypeResource embeds the font program and assembles the descriptor
// and width array for a simple TrueType font.
func (f *Font) trueTypeResource(w *core.Writer) (core.Object, error) {
	compressed := filters.FlateEncode(f.program)
	programDict := core.Dict{
		"Filter":  core.Name("FlateDecode"),
		"Length1": core.Int(len(f.program)),
	}
	programRef := w.Add(core.NewStream(programDict, compressed))

	descriptor := core.Dict{
		"Type":     core.Name("FontDescriptor"),
		"FontName": core.Name(f.BaseFont),
		"Flags":    core.Int(32),
		"FontBBox": core.Array{
			core.Real(f.bbox[0]), core.Real(f.bbox[1]),
			core.Real(f.bbox[2]), core.Real(f.bbox[3]),
		},
		"ItalicAngle": core.Int(0),
		"Ascent":      core.Real(f.ascender),
		"Descent":     core.Real(f.descender),
		"CapHeight":   core.Real(f.ascender),
		"StemV":       core.Int(80),
		"FontFile2":   programRef,
	}
	descriptorRef := w.Add(descriptor)

	const firstChar, lastChar = 32, 255
	widths := make(core.Array, 0, lastChar-firstChar+1)
	for code := firstChar; code <= lastChar; code++ {
		r := charmap.Windows1252.DecodeByte(byte(code))
		widths = append(widths, core.Int(f.widths[r]))
	}

	return core.Dict{
		"Type":           core.Name("Font"),
		"Subtype":        core.Name("TrueType"),
		"BaseFont":       core.Name(f.BaseFont),
		"Encoding":       core.Name("WinAnsiEncoding"),
		"FirstChar":      core.Int(firstChar),
		"LastChar":       core.Int(lastChar),
		"Widths":         widths,
		"FontDescriptor": descriptorRef,
	}, nil
}

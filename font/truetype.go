package font

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	xfont "golang.org/x/image/font"
)

// LoadTrueType parses a TrueType font and extracts the metrics used for
// placement: advances and kerning pairs for the WinAnsi character set and
// the vertical extents. The font program is kept for embedding. An empty
// name uses the font's PostScript name.
func LoadTrueType(name string, data []byte) (*Font, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing TrueType font: %w", err)
	}

	var buf sfnt.Buffer
	if name == "" {
		name, err = parsed.Name(&buf, sfnt.NameIDPostScript)
		if err != nil {
			return nil, fmt.Errorf("reading font name: %w", err)
		}
	}

	// Working at ppem == unitsPerEm keeps the 26.6 values proportional to
	// design units, so scaling to thousandths of em is a single division.
	upem := float64(parsed.UnitsPerEm())
	ppem := fixed.I(int(parsed.UnitsPerEm()))
	toThousandths := func(v fixed.Int26_6) float64 {
		return float64(v) / 64 / upem * 1000
	}

	metrics, err := parsed.Metrics(&buf, ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("reading font metrics: %w", err)
	}

	f := &Font{
		BaseFont:  name,
		widths:    make(map[rune]float64),
		kern:      make(map[kernPair]float64),
		ascender:  toThousandths(metrics.Ascent),
		descender: -toThousandths(metrics.Descent),
		program:   data,
	}

	bounds, err := parsed.Bounds(&buf, ppem, xfont.HintingNone)
	if err == nil {
		// sfnt bounds grow downward; flip Y for the PDF convention.
		f.bbox = [4]float64{
			toThousandths(bounds.Min.X),
			-toThousandths(bounds.Max.Y),
			toThousandths(bounds.Max.X),
			-toThousandths(bounds.Min.Y),
		}
	} else {
		f.bbox = [4]float64{0, f.descender, 1000, f.ascender}
	}

	glyphs := make(map[rune]sfnt.GlyphIndex)
	for code := 32; code <= 255; code++ {
		r := charmap.Windows1252.DecodeByte(byte(code))
		if r == '�' {
			continue
		}
		gi, err := parsed.GlyphIndex(&buf, r)
		if err != nil || gi == 0 {
			continue
		}
		adv, err := parsed.GlyphAdvance(&buf, gi, ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		glyphs[r] = gi
		f.widths[r] = toThousandths(adv)
	}

	// Probe kerning over the ASCII range; fonts without a kern table fail
	// every lookup and the map stays empty.
	for left := rune(32); left <= 126; left++ {
		gl, ok := glyphs[left]
		if !ok {
			continue
		}
		for right := rune(32); right <= 126; right++ {
			gr, ok := glyphs[right]
			if !ok {
				continue
			}
			k, err := parsed.Kern(&buf, gl, gr, ppem, xfont.HintingNone)
			if err != nil || k == 0 {
				continue
			}
			f.kern[kernPair{left, right}] = toThousandths(k)
		}
	}

	return f, nil
}

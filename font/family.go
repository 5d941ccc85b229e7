package font

import (
	"fmt"

	"github.com/tsawler/quill/text"
)

// Family groups the four style variants of a typeface so styled text can
// switch faces as the style state changes.
type Family struct {
	faces [4]*Font
}

// NewFamily builds a family from explicit faces. A nil variant falls back
// to the normal face, which must not be nil.
func NewFamily(normal, bold, italic, boldItalic *Font) *Family {
	fam := &Family{faces: [4]*Font{normal, bold, italic, boldItalic}}
	for i, f := range fam.faces {
		if f == nil {
			fam.faces[i] = normal
		}
	}
	return fam
}

// standardFamilies maps a family name to its four Standard 14 face names,
// ordered normal, bold, italic, bold-italic.
var standardFamilies = map[string][4]string{
	"Helvetica": {"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique"},
	"Times":     {"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic"},
	"Courier":   {"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique"},
}

// StandardFamily returns the styled variants of a Standard 14 family:
// Helvetica, Times, or Courier.
func StandardFamily(name string) (*Family, error) {
	names, ok := standardFamilies[name]
	if !ok {
		return nil, fmt.Errorf("unknown standard font family %q", name)
	}

	var fam Family
	for i, faceName := range names {
		face, err := Standard(faceName)
		if err != nil {
			return nil, err
		}
		fam.faces[i] = face
	}
	return &fam, nil
}

// Face returns the variant for a style, falling back to the normal face
// for unknown style values.
func (fam *Family) Face(style text.Style) *Font {
	switch style {
	case text.StyleBold:
		return fam.faces[1]
	case text.StyleItalic:
		return fam.faces[2]
	case text.StyleBoldItalic:
		return fam.faces[3]
	default:
		return fam.faces[0]
	}
}

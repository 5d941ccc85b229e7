package font

import (
	"testing"

	"github.com/tsawler/quill/text"
)

// TestStandardFamilyFaces tests the style-to-face mapping of a built-in family
func TestStandardFamilyFaces(t *testing.T) {
	fam, err := StandardFamily("Times")
	if err != nil {
		t.Fatalf("StandardFamily failed: %v", err)
	}

	tests := []struct {
		style text.Style
		want  string
	}{
		{text.StyleNormal, "Times-Roman"},
		{text.StyleBold, "Times-Bold"},
		{text.StyleItalic, "Times-Italic"},
		{text.StyleBoldItalic, "Times-BoldItalic"},
		{text.Style(99), "Times-Roman"},
	}

	for _, tt := range tests {
		if got := fam.Face(tt.style).BaseFont; got != tt.want {
			t.Errorf("style %v: expected %q, got %q", tt.style, tt.want, got)
		}
	}
}

// TestStandardFamilyUnknown tests the error for an unknown family name
func TestStandardFamilyUnknown(t *testing.T) {
	if _, err := StandardFamily("Futura"); err == nil {
		t.Error("expected error for unknown family")
	}
}

// TestNewFamilyFallback tests that missing variants fall back to normal
func TestNewFamilyFallback(t *testing.T) {
	normal, err := Standard("Helvetica")
	if err != nil {
		t.Fatalf("Standard failed: %v", err)
	}
	bold, err := Standard("Helvetica-Bold")
	if err != nil {
		t.Fatalf("Standard failed: %v", err)
	}

	fam := NewFamily(normal, bold, nil, nil)

	if fam.Face(text.StyleItalic) != normal {
		t.Error("expected italic to fall back to normal")
	}
	if fam.Face(text.StyleBold) != bold {
		t.Error("expected bold face to be used")
	}
}

package core

import (
	"bytes"
	"strconv"
	"testing"
)

// TestMarshalScalars tests PDF syntax for the scalar object types
func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{"null", Null{}, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"real", Real(1.5), "1.5"},
		{"real trims zeros", Real(72.0), "72"},
		{"real negative zero", Real(-0.0000001), "0"},
		{"name", Name("Type"), "/Type"},
		{"name with space", Name("A B"), "/A#20B"},
		{"ref", IndirectRef{Number: 3, Generation: 0}, "3 0 R"},
	}

	for _, tt := range tests {
		got := string(MarshalToBytes(tt.obj))
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

// TestMarshalString tests literal string escaping
func TestMarshalString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "(Hello)"},
		{"a(b)c", `(a\(b\)c)`},
		{`back\slash`, `(back\\slash)`},
		{"line\nbreak", `(line\nbreak)`},
		{"tab\there", `(tab\there)`},
	}

	for _, tt := range tests {
		got := string(MarshalToBytes(String(tt.in)))
		if got != tt.want {
			t.Errorf("string %q: expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

// TestMarshalDictSortsKeys tests that dictionary output is deterministic
func TestMarshalDictSortsKeys(t *testing.T) {
	d := Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name("Helvetica"),
	}

	got := string(MarshalToBytes(d))
	want := "<</BaseFont /Helvetica /Subtype /Type1 /Type /Font>>"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// TestMarshalArray tests array serialization with mixed element types
func TestMarshalArray(t *testing.T) {
	a := Array{Int(0), Int(0), Real(612), Real(792)}

	got := string(MarshalToBytes(a))
	want := "[0 0 612 792]"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// TestMarshalStream tests stream framing and the automatic Length entry
func TestMarshalStream(t *testing.T) {
	s := NewStream(nil, []byte("BT ET"))

	got := string(MarshalToBytes(s))
	want := "<</Length 5>>\nstream\nBT ET\nendstream"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestFormatReal tests the number formatting convention
func TestFormatReal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{-12.25, "-12.25"},
		{612, "612"},
		{1.0 / 3.0, "0.33333"},
	}

	for _, tt := range tests {
		if got := FormatReal(tt.in); got != tt.want {
			t.Errorf("FormatReal(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

// TestWriterLayout tests the overall file layout: header, objects in order,
// xref entry count, and trailer keys
func TestWriterLayout(t *testing.T) {
	w := NewWriter()
	catalog := w.Add(Dict{"Type": Name("Catalog")})
	w.SetRoot(catalog)

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-1.3\n")) {
		t.Errorf("missing header, got %q", data[:16])
	}
	if !bytes.Contains(data, []byte("1 0 obj\n<</Type /Catalog>>\nendobj\n")) {
		t.Errorf("missing catalog object body")
	}
	if !bytes.Contains(data, []byte("xref\n0 2\n")) {
		t.Errorf("missing xref subsection header")
	}
	if !bytes.Contains(data, []byte("0000000000 65535 f \n")) {
		t.Errorf("missing free-list entry")
	}
	if !bytes.Contains(data, []byte("/Root 1 0 R")) {
		t.Errorf("missing trailer root")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Errorf("missing EOF marker")
	}
}

// TestWriterXrefOffsets tests that xref entries point at the object bodies
func TestWriterXrefOffsets(t *testing.T) {
	w := NewWriter()
	first := w.Add(Dict{"Type": Name("Catalog")})
	w.Add(Dict{"Type": Name("Pages"), "Count": Int(0), "Kids": Array{}})
	w.SetRoot(first)

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	idx := bytes.Index(data, []byte("xref\n0 3\n"))
	if idx < 0 {
		t.Fatalf("xref table not found")
	}
	// First in-use entry follows the subsection header and free entry.
	entries := data[idx+len("xref\n0 3\n")+20:]
	off1, err := strconv.Atoi(string(entries[:10]))
	if err != nil {
		t.Fatalf("cannot parse first offset: %v", err)
	}
	if !bytes.HasPrefix(data[off1:], []byte("1 0 obj")) {
		t.Errorf("offset %d does not point at object 1, got %q", off1, data[off1:off1+8])
	}
}

// TestWriterRequiresRoot tests that serialization fails without a catalog
func TestWriterRequiresRoot(t *testing.T) {
	w := NewWriter()
	w.Add(Dict{})

	if _, err := w.Bytes(); err == nil {
		t.Errorf("expected error for missing root, got nil")
	}
}

// TestWriterReserveFill tests two-phase object allocation
func TestWriterReserveFill(t *testing.T) {
	w := NewWriter()
	ref := w.Reserve()
	if ref.Number != 1 {
		t.Fatalf("expected object number 1, got %d", ref.Number)
	}

	if err := w.Fill(ref, Dict{"Type": Name("Catalog")}); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	w.SetRoot(ref)

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Contains(data, []byte("<</Type /Catalog>>")) {
		t.Errorf("filled object body missing")
	}

	if err := w.Fill(IndirectRef{Number: 99}, Null{}); err == nil {
		t.Errorf("expected error for unreserved object number")
	}
}

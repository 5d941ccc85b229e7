package core

import (
	"bytes"
	"fmt"
	"io"
)

// Writer assembles a PDF file from indirect objects. Object numbers are
// allocated sequentially starting at 1; object 0 is the conventional free
// list head in the cross-reference table.
type Writer struct {
	objects []IndirectObject
	root    IndirectRef
	info    IndirectRef
	hasRoot bool
	hasInfo bool
	version string
}

// NewWriter creates a writer producing PDF 1.3 output, the lowest version
// that covers everything this library emits.
func NewWriter() *Writer {
	return &Writer{version: "1.3"}
}

// Reserve allocates an object number without supplying its body yet.
// The body must be provided later via Fill, or the file will contain a
// null object at that number.
func (w *Writer) Reserve() IndirectRef {
	ref := IndirectRef{Number: len(w.objects) + 1}
	w.objects = append(w.objects, IndirectObject{Ref: ref, Object: Null{}})
	return ref
}

// Fill supplies the body for a previously reserved object number.
func (w *Writer) Fill(ref IndirectRef, obj Object) error {
	idx := ref.Number - 1
	if idx < 0 || idx >= len(w.objects) {
		return fmt.Errorf("object number %d was never reserved", ref.Number)
	}
	w.objects[idx].Object = obj
	return nil
}

// Add allocates the next object number and records obj as its body,
// returning the reference other objects use to point at it.
func (w *Writer) Add(obj Object) IndirectRef {
	ref := w.Reserve()
	w.objects[ref.Number-1].Object = obj
	return ref
}

// SetRoot records the document catalog reference for the trailer.
func (w *Writer) SetRoot(ref IndirectRef) {
	w.root = ref
	w.hasRoot = true
}

// SetInfo records the optional document information dictionary reference.
func (w *Writer) SetInfo(ref IndirectRef) {
	w.info = ref
	w.hasInfo = true
}

// WriteTo serializes the complete file: header, object bodies, xref table,
// and trailer. It fails if no catalog was set via SetRoot.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	if !w.hasRoot {
		return 0, fmt.Errorf("document has no catalog; call SetRoot first")
	}

	var buf bytes.Buffer

	// Header. The binary comment line marks the file as non-ASCII so
	// transfer tools leave it alone.
	fmt.Fprintf(&buf, "%%PDF-%s\n", w.version)
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	// Body, recording the byte offset of every object for the xref table.
	offsets := make([]int, len(w.objects))
	for i, iobj := range w.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d %d obj\n", iobj.Ref.Number, iobj.Ref.Generation)
		Marshal(&buf, iobj.Object)
		buf.WriteString("\nendobj\n")
	}

	// Cross-reference table. Entries are exactly 20 bytes: ten-digit
	// offset, five-digit generation, keyword, and a two-byte line end.
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(w.objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	// Trailer.
	trailer := Dict{
		"Size": Int(len(w.objects) + 1),
		"Root": w.root,
	}
	if w.hasInfo {
		trailer.Set("Info", w.info)
	}
	buf.WriteString("trailer\n")
	Marshal(&buf, trailer)
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF\n", xrefStart)

	n, err := out.Write(buf.Bytes())
	return int64(n), err
}

// Bytes serializes the complete file into memory.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package contentstream

import (
	"bytes"

	"github.com/tsawler/quill/core"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "Td", "q")
	Operands []core.Object // The operands
}

// Writer accumulates content stream operations and serializes them in order.
type Writer struct {
	ops []Operation
}

// NewWriter creates an empty content stream writer.
func NewWriter() *Writer {
	return &Writer{ops: make([]Operation, 0)}
}

// Op appends a raw operation.
func (w *Writer) Op(operator string, operands ...core.Object) {
	w.ops = append(w.ops, Operation{Operator: operator, Operands: operands})
}

// Operations returns the accumulated operations in order.
func (w *Writer) Operations() []Operation {
	return w.ops
}

// Bytes serializes the accumulated operations, one per line, with operands
// in PDF syntax preceding each operator.
func (w *Writer) Bytes() []byte {
	var buf bytes.Buffer
	for _, op := range w.ops {
		for _, operand := range op.Operands {
			core.Marshal(&buf, operand)
			buf.WriteByte(' ')
		}
		buf.WriteString(op.Operator)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// BeginText starts a text object (BT operator).
func (w *Writer) BeginText() {
	w.Op("BT")
}

// EndText ends a text object (ET operator).
func (w *Writer) EndText() {
	w.Op("ET")
}

// SetFont selects the named font resource at the given size (Tf operator).
func (w *Writer) SetFont(name core.Name, size float64) {
	w.Op("Tf", name, core.Real(size))
}

// MoveText sets the text position (Td operator).
func (w *Writer) MoveText(x, y float64) {
	w.Op("Td", core.Real(x), core.Real(y))
}

// SetRenderingMode sets the text rendering mode (Tr operator).
// Mode 0 fills glyphs; mode 3 renders nothing, which is how invisible
// text layers over scanned images are produced.
func (w *Writer) SetRenderingMode(mode int) {
	w.Op("Tr", core.Int(mode))
}

// ShowText shows a single encoded string (Tj operator).
func (w *Writer) ShowText(s core.String) {
	w.Op("Tj", s)
}

// ShowTextArray shows text with positioning adjustments (TJ operator).
// The array alternates encoded strings and numeric adjustments in
// thousandths of em, subtracted from the advance.
func (w *Writer) ShowTextArray(arr core.Array) {
	w.Op("TJ", arr)
}

// Save pushes the graphics state (q operator).
func (w *Writer) Save() {
	w.Op("q")
}

// Restore pops the graphics state (Q operator).
func (w *Writer) Restore() {
	w.Op("Q")
}

// Concat multiplies the current transformation matrix (cm operator).
func (w *Writer) Concat(a, b, c, d, e, f float64) {
	w.Op("cm", core.Real(a), core.Real(b), core.Real(c), core.Real(d), core.Real(e), core.Real(f))
}

// PaintXObject paints a named external object such as an image (Do operator).
func (w *Writer) PaintXObject(name core.Name) {
	w.Op("Do", name)
}

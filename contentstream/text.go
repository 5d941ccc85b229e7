package contentstream

import (
	"bytes"

	"github.com/tsawler/quill/core"
)

// TextRun describes one positioned, metric-resolved text run. The payload
// comes from the font-metrics layer already encoded for the output stream:
// a core.String, or a core.Array alternating strings and kerning
// adjustments.
type TextRun struct {
	Font       core.Name   // Font resource name (e.g. "F1")
	Size       float64     // Font size in points
	X, Y       float64     // Absolute position of the baseline start
	Payload    core.Object // Encoded show-text payload
	Kerning    bool        // Whether the kerned operator form may be used
	RenderMode int         // Tr mode; 0 fills, 3 is invisible
}

// EncodeTextRun emits the positioned-text block for a single run:
// BT, font selection, position, show-text, ET. The kerned TJ form is used
// only when kerning is enabled for the run AND the payload is an array;
// a plain-string payload or disabled kerning emits Tj.
func EncodeTextRun(r TextRun) []byte {
	w := NewWriter()
	w.BeginText()
	w.SetFont(r.Font, r.Size)
	if r.RenderMode != 0 {
		w.SetRenderingMode(r.RenderMode)
	}
	w.MoveText(r.X, r.Y)

	arr, isArray := r.Payload.(core.Array)
	if r.Kerning && isArray {
		w.ShowTextArray(arr)
	} else {
		w.ShowText(flattenPayload(r.Payload))
	}

	w.EndText()
	return w.Bytes()
}

// EncodeImagePlacement emits the block that paints the named image XObject
// scaled to width×height at (x, y): the CTM concat bracketing a Do.
func EncodeImagePlacement(name core.Name, x, y, width, height float64) []byte {
	w := NewWriter()
	w.Save()
	w.Concat(width, 0, 0, height, x, y)
	w.PaintXObject(name)
	w.Restore()
	return w.Bytes()
}

// flattenPayload reduces a payload to a single string for the Tj form,
// dropping any adjustment values an array payload carries.
func flattenPayload(payload core.Object) core.String {
	switch v := payload.(type) {
	case core.String:
		return v
	case core.Array:
		var buf bytes.Buffer
		for _, elem := range v {
			if s, ok := elem.(core.String); ok {
				buf.WriteString(string(s))
			}
		}
		return core.String(buf.String())
	default:
		return ""
	}
}

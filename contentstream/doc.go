// Package contentstream provides generation of PDF content streams.
//
// Content streams contain the instructions for rendering page content,
// including text display, graphics operations, and image placement.
//
// # Content Stream Operations
//
// PDF content streams consist of operators and their operands. The [Writer]
// type accumulates operations and serializes them:
//
//	w := contentstream.NewWriter()
//	w.BeginText()
//	w.SetFont("F1", 12)
//	w.MoveText(72, 708)
//	w.ShowText(core.String("Hello"))
//	w.EndText()
//	data := w.Bytes()
//
// # Text Runs
//
// [EncodeTextRun] emits the complete positioned-text block for a single
// run: BT, font selection (Tf), position (Td), the show-text operator,
// and ET. The show-text operator form follows the run's payload: Tj for a
// single encoded string, TJ for the kerned array of alternating strings
// and adjustment values. The adjustment values come pre-computed from the
// font-metrics layer; this package only selects the operator form.
//
// # Common Operators
//
// Text operators:
//   - BT, ET - Begin/end text object
//   - Tf - Set font and size
//   - Tj, TJ - Show text
//   - Td - Move text position
//   - Tr - Set text rendering mode
//
// Graphics state operators:
//   - q, Q - Save/restore graphics state
//   - cm - Modify CTM (current transformation matrix)
//
// XObject operators:
//   - Do - Paint a named external object (images)
package contentstream

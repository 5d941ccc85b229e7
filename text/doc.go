// Package text places styled text onto a paginated content area.
//
// This package implements the two halves of flowed text placement: the
// style-tag parser, which splits inline <b>/<i> markup into plain segments
// annotated with a style, and the flow engine, which turns an unwrapped
// string plus a target box into positioned, aligned, paginated text runs.
//
// # Flowing Text
//
// [Flow] is the single entry point. Without an explicit position it wraps
// the text to the surface's content box, aligns each line, advances the
// flow cursor, and starts a new page whenever a line would cross the
// bottom edge:
//
//	err := text.Flow(surface, metrics, text.Request{
//	    Text: "The quick brown fox...",
//	    Font: "F1",
//	    Size: 12,
//	})
//
// With an explicit position ([Request.At]) the text is placed as a single
// run with no wrapping, alignment, or pagination.
//
// # Continuation
//
// [Request.HoldPosition] keeps the cursor on the last placed line and
// records its rendered width as a horizontal carry, so the next call
// appends to that line instead of starting a new one. The carry is
// consumed by the first line of the following call only.
//
// # Style Tags
//
// [Segments] splits a string on the literal tags <b>, </b>, <i>, </i>,
// tracking the active style through an explicit transition table. A tag
// with no transition defined from the current state is not an error: it is
// emitted as literal text. [ContainsTags] lets callers skip the parser for
// plain strings.
//
// # Collaborators
//
// Font metrics and line wrapping come through the [Metrics] interface, and
// the page being written through [Surface]. Both are satisfied by the font
// and root document types, and by deterministic stubs in the tests here.
// The surface's cursor is owned by exactly one writer at a time; callers
// that share a box must serialize their calls.
package text

package text

import "strings"

// Style identifies the inline style active for a segment of text.
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// String returns a readable name for the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Segment is a run of plain text annotated with its active style.
// Concatenating the Text fields of all segments, in order, reconstructs
// the input with the recognized tag markers removed.
type Segment struct {
	Text  string
	Style Style
}

// styleTags are the exact tag tokens the parser recognizes. Anything else,
// including case variants and tags with attributes, is literal text.
var styleTags = []string{"</b>", "</i>", "<b>", "<i>"}

// transition keys the style state machine on (tag, current style).
type transition struct {
	tag  string
	from Style
}

// styleTransitions is the complete transition table. Any (tag, style) pair
// absent here leaves the state unchanged and the tag text passes through
// as a literal segment.
var styleTransitions = map[transition]Style{
	{"<b>", StyleNormal}:      StyleBold,
	{"<b>", StyleItalic}:      StyleBoldItalic,
	{"</b>", StyleBold}:       StyleNormal,
	{"</b>", StyleBoldItalic}: StyleItalic,
	{"<i>", StyleNormal}:      StyleItalic,
	{"<i>", StyleBold}:        StyleBoldItalic,
	{"</i>", StyleItalic}:     StyleNormal,
	{"</i>", StyleBoldItalic}: StyleBold,
}

// ContainsTags reports whether s contains any style tag marker at all.
// Callers use it to skip segmentation for plain strings; it is an
// optimization, not a correctness requirement.
func ContainsTags(s string) bool {
	for _, tag := range styleTags {
		if strings.Contains(s, tag) {
			return true
		}
	}
	return false
}

// Segments splits s into style-annotated segments. Recognized tags with a
// defined transition from the current state switch the state and emit
// nothing; every other token, including tags with no defined transition,
// is emitted with the current style. Consecutive tokens with the same
// style collapse into one segment.
func Segments(s string) []Segment {
	state := StyleNormal
	var segments []Segment

	emit := func(text string) {
		if text == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Style == state {
			segments[n-1].Text += text
			return
		}
		segments = append(segments, Segment{Text: text, Style: state})
	}

	for len(s) > 0 {
		idx, tag := nextTag(s)
		if idx < 0 {
			emit(s)
			break
		}
		emit(s[:idx])

		if next, ok := styleTransitions[transition{tag, state}]; ok {
			state = next
		} else {
			emit(tag)
		}
		s = s[idx+len(tag):]
	}

	return segments
}

// nextTag finds the earliest style tag in s, returning its index and the
// tag matched, or -1 when none occurs.
func nextTag(s string) (int, string) {
	best := -1
	var bestTag string
	for _, tag := range styleTags {
		if idx := strings.Index(s, tag); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			bestTag = tag
		}
	}
	return best, bestTag
}

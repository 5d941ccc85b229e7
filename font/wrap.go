package font

import (
	"strings"
	"unicode"

	"github.com/tsawler/quill/text"
)

// NaiveWrap greedily fills lines no wider than availableWidth, breaking at
// word boundaries. The first line is shortened by startOffset so it can
// continue a held line. Space runs attach to the line before them and keep
// their width, so a held line's carry accounts for trailing spaces. A word
// wider than the whole line is hard-broken between runes. Newlines force
// breaks. The returned lines cover the input in order.
func (f *Font) NaiveWrap(s string, availableWidth, size float64, kerning bool, startOffset float64) ([]text.Line, error) {
	var lines []text.Line
	avail := availableWidth - startOffset

	for i, paragraph := range strings.Split(s, "\n") {
		if i > 0 {
			avail = availableWidth
		}
		wrapped, err := f.wrapParagraph(paragraph, availableWidth, avail, size, kerning)
		if err != nil {
			return nil, err
		}
		lines = append(lines, wrapped...)
		avail = availableWidth
	}
	return lines, nil
}

// wrapParagraph wraps one newline-free run of text. firstAvail is the width
// left on the first line; later lines get the full width.
func (f *Font) wrapParagraph(s string, fullWidth, firstAvail, size float64, kerning bool) ([]text.Line, error) {
	var lines []text.Line
	avail := firstAvail
	var cur strings.Builder

	flush := func() error {
		line, err := f.makeLine(cur.String(), size, kerning)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		cur.Reset()
		avail = fullWidth
		return nil
	}

	for _, token := range splitTokens(s) {
		if isSpaceToken(token) {
			cur.WriteString(token)
			continue
		}

		candidate := cur.String() + token
		if f.WidthOf(candidate, size, kerning) <= avail {
			cur.WriteString(token)
			continue
		}

		if cur.Len() > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
		}

		// The word alone may still be too wide for an empty line; break
		// it between runes, keeping at least one rune per piece.
		for f.WidthOf(token, size, kerning) > avail {
			runes := []rune(token)
			cut := 1
			for cut < len(runes) && f.WidthOf(string(runes[:cut+1]), size, kerning) <= avail {
				cut++
			}
			if cut >= len(runes) {
				break
			}
			cur.WriteString(string(runes[:cut]))
			if err := flush(); err != nil {
				return nil, err
			}
			token = string(runes[cut:])
		}
		cur.WriteString(token)
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return lines, nil
}

// makeLine builds the placed form of one wrapped line.
func (f *Font) makeLine(s string, size float64, kerning bool) (text.Line, error) {
	payload, err := f.ConvertText(s, kerning)
	if err != nil {
		return text.Line{}, err
	}
	return text.Line{
		Text:    s,
		Payload: payload,
		Width:   f.WidthOf(s, size, kerning),
	}, nil
}

// splitTokens splits s into alternating runs of non-space and space
// characters, preserving every byte of the input.
func splitTokens(s string) []string {
	var tokens []string
	start := 0
	for i, r := range s {
		if i == 0 {
			continue
		}
		if unicode.IsSpace(r) != isSpaceToken(s[start:i]) {
			tokens = append(tokens, s[start:i])
			start = i
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// isSpaceToken reports whether a token is a run of space characters.
func isSpaceToken(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

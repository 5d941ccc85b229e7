// Package htmltext converts basic inline HTML into the style-tag markup
// the text package consumes.
//
// Supported markup is deliberately small: <b> and <strong> become <b>,
// <i> and <em> become <i>, <br> becomes a line break, and the ends of
// block elements (p, div, li, headings) break the line. Entities are
// decoded; every other tag is dropped, keeping its text. Lists, tables,
// and other rich structure are out of scope.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Convert turns an HTML fragment into flowable text with <b>/<i> style
// tags. Whitespace inside text collapses the way browsers render it.
func Convert(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var sb strings.Builder
	var bold, italic int

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())

		case html.TextToken:
			sb.WriteString(collapseSpace(string(z.Text())))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				if bold == 0 {
					sb.WriteString("<b>")
				}
				bold++
			case "i", "em":
				if italic == 0 {
					sb.WriteString("<i>")
				}
				italic++
			case "br":
				sb.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				if bold > 0 {
					bold--
					if bold == 0 {
						sb.WriteString("</b>")
					}
				}
			case "i", "em":
				if italic > 0 {
					italic--
					if italic == 0 {
						sb.WriteString("</i>")
					}
				}
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				sb.WriteByte('\n')
			}
		}
	}
}

// collapseSpace reduces every whitespace run to a single space, the way
// HTML text is rendered.
func collapseSpace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
		default:
			sb.WriteRune(r)
			inSpace = false
		}
	}
	return sb.String()
}

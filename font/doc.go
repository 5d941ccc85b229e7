// Package font provides the metrics and encoding services behind text
// placement: character widths, vertical extents, kerning pairs, show-text
// payload encoding, and greedy line wrapping.
//
// # Standard 14 Fonts
//
// [Standard] returns one of the fourteen fonts every PDF viewer ships with,
// loaded with built-in AFM-derived metrics:
//
//	f, err := font.Standard("Helvetica")
//
// The Helvetica and Times families carry a kerning table; Courier, Symbol,
// and ZapfDingbats do not, so kerning defaults off for them.
//
// # TrueType Fonts
//
// [LoadTrueType] parses a TrueType file and extracts widths, vertical
// metrics, and kerning pairs for the WinAnsi character set. The font
// program is embedded in the output file when the font's resource
// dictionary is built.
//
// # Encoding
//
// Show-text payloads use WinAnsi (Windows-1252) bytes. [Font.ConvertText]
// encodes a string and, when kerning is requested and the font has pairs
// that apply, produces the array payload form with inter-glyph adjustments.
// A rune outside the WinAnsi repertoire fails with an [EncodingError].
//
// # Wrapping
//
// [Font.NaiveWrap] fills lines greedily at word boundaries, honoring a
// start offset for the first line and hard-breaking words wider than the
// whole line. Newlines in the input force line breaks.
package font

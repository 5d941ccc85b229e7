package filters

// ASCIIHexEncode converts data to the two-digit hex form consumed by the
// ASCIIHexDecode filter, terminated with the > marker and broken into
// 64-character lines.
func ASCIIHexEncode(data []byte) []byte {
	const hexDigits = "0123456789ABCDEF"
	const lineWidth = 64

	out := make([]byte, 0, len(data)*2+len(data)/32+2)
	col := 0
	for _, b := range data {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0F])
		col += 2
		if col >= lineWidth {
			out = append(out, '\n')
			col = 0
		}
	}
	return append(out, '>')
}

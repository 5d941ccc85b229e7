package filters

import (
	"bytes"
	"compress/zlib"
)

// FlateEncode compresses data for a stream carrying the FlateDecode filter.
func FlateEncode(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

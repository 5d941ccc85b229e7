// Package filters implements the encode side of the PDF stream filters
// this library emits.
//
// FlateEncode compresses content streams and embedded font programs with
// zlib, the representation FlateDecode consumers expect. ASCIIHexEncode
// produces the readable hex form, useful when inspecting generated files.
package filters

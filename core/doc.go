// Package core provides low-level PDF object types and file serialization.
//
// This package implements the fundamental building blocks for producing PDF
// files, including all eight PDF object types (null, boolean, integer, real,
// string, name, array, and dictionary), as well as streams, indirect
// references, and the file-level writer that assembles the body,
// cross-reference table, and trailer.
//
// # Object Types
//
// PDF defines eight basic object types, all implemented as types satisfying
// the Object interface:
//
//   - [Null] - represents the PDF null object
//   - [Bool] - represents PDF boolean values (true/false)
//   - [Int] - represents PDF integers
//   - [Real] - represents PDF real numbers (floating point)
//   - [String] - represents PDF string objects
//   - [Name] - represents PDF name objects (e.g., /Type, /Font)
//   - [Array] - represents PDF arrays
//   - [Dict] - represents PDF dictionaries
//
// Additionally, [Stream] represents a PDF stream (dictionary + binary data),
// and [IndirectRef] represents a reference to an indirect object.
//
// # Serialization
//
// [Marshal] renders any object in PDF syntax. Dictionaries are written with
// sorted keys so output is deterministic, literal strings are escaped per
// the PDF string grammar, and real numbers are written with trailing zeros
// trimmed.
//
// # File Writing
//
// The [Writer] type allocates indirect object numbers, collects object
// bodies, and produces a complete file:
//
//	w := core.NewWriter()
//	ref := w.Add(dict)
//	w.SetRoot(catalogRef)
//	data, err := w.Bytes()
//
// The output uses a traditional cross-reference table (PDF 1.3 syntax),
// which every reader understands.
package core

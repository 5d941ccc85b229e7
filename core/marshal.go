package core

import (
	"bytes"
	"fmt"
	"strconv"
)

// Marshal renders an object in PDF file syntax and appends it to buf.
// Dictionaries are written with sorted keys, literal strings are escaped
// per the PDF string grammar, and streams include their stream/endstream
// framing.
func Marshal(buf *bytes.Buffer, obj Object) {
	switch v := obj.(type) {
	case nil:
		buf.WriteString("null")

	case Null:
		buf.WriteString("null")

	case Bool:
		buf.WriteString(v.String())

	case Int:
		buf.WriteString(strconv.FormatInt(int64(v), 10))

	case Real:
		buf.WriteString(FormatReal(float64(v)))

	case String:
		marshalString(buf, string(v))

	case Name:
		marshalName(buf, string(v))

	case Array:
		buf.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				buf.WriteByte(' ')
			}
			Marshal(buf, elem)
		}
		buf.WriteByte(']')

	case Dict:
		marshalDict(buf, v)

	case *Stream:
		marshalDict(buf, v.Dict)
		buf.WriteString("\nstream\n")
		buf.Write(v.Data)
		buf.WriteString("\nendstream")

	case IndirectRef:
		fmt.Fprintf(buf, "%d %d R", v.Number, v.Generation)

	default:
		// Unknown object types have no PDF syntax; write null so the file
		// stays parseable.
		buf.WriteString("null")
	}
}

// MarshalToBytes renders an object in PDF file syntax as a new byte slice.
func MarshalToBytes(obj Object) []byte {
	var buf bytes.Buffer
	Marshal(&buf, obj)
	return buf.Bytes()
}

// FormatReal formats a real number the way PDF producers conventionally do:
// fixed notation with trailing zeros (and a trailing decimal point) trimmed.
// Exponent notation is not legal PDF syntax.
func FormatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 5, 64)
	s = trimTrailingZeros(s)
	if s == "-0" {
		return "0"
	}
	return s
}

// trimTrailingZeros removes trailing zeros after a decimal point, and the
// point itself when nothing follows it.
func trimTrailingZeros(s string) string {
	if !containsByte(s, '.') {
		return s
	}
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// marshalString writes a literal string with backslash escapes for the
// characters the PDF grammar reserves, plus the common control characters.
func marshalString(buf *bytes.Buffer, s string) {
	buf.WriteByte('(')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
}

// marshalName writes a name object, escaping delimiter and whitespace bytes
// with the #xx form.
func marshalName(buf *bytes.Buffer, s string) {
	buf.WriteByte('/')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isRegularNameByte(c) {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(buf, "#%02X", c)
		}
	}
}

// isRegularNameByte reports whether c may appear unescaped in a name.
func isRegularNameByte(c byte) bool {
	if c <= 32 || c >= 127 {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%', '#':
		return false
	}
	return true
}

// marshalDict writes a dictionary with keys in sorted order.
func marshalDict(buf *bytes.Buffer, d Dict) {
	buf.WriteString("<<")
	for i, key := range d.Keys() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		marshalName(buf, key)
		buf.WriteByte(' ')
		Marshal(buf, d[key])
	}
	buf.WriteString(">>")
}

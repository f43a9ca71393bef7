package token

import (
	"strings"
	"unicode/utf8"

	hex "github.com/tmthrgd/go-hex"
)

// Quote returns s as a JSON string literal using the extended escape table.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s))
}

// AppendQuote appends s to b as a JSON string literal. Besides the characters
// JSON requires to be escaped, it escapes the C1 control range and a fixed
// set of format/bidi control points that are unsafe when the output is
// embedded in other documents. Strings without escapable characters are
// wrapped in quotes as-is.
func AppendQuote(b []byte, s string) []byte {
	if strings.IndexFunc(s, escapable) == -1 {
		b = append(b, '"')
		b = append(b, s...)
		return append(b, '"')
	}

	b = append(b, '"')
	for _, r := range s {
		switch r {
		case '"':
			b = append(b, '\\', '"')
		case '\\':
			b = append(b, '\\', '\\')
		case '\b':
			b = append(b, '\\', 'b')
		case '\t':
			b = append(b, '\\', 't')
		case '\n':
			b = append(b, '\\', 'n')
		case '\f':
			b = append(b, '\\', 'f')
		case '\r':
			b = append(b, '\\', 'r')
		default:
			if escapable(r) {
				b = appendUnicodeEscape(b, r)
			} else {
				b = appendRune(b, r)
			}
		}
	}
	return append(b, '"')
}

func appendUnicodeEscape(b []byte, r rune) []byte {
	src := [2]byte{byte(r >> 8), byte(r)}
	var dst [4]byte
	hex.Encode(dst[:], src[:])
	b = append(b, '\\', 'u')
	return append(b, dst[:]...)
}

func appendRune(b []byte, r rune) []byte {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return append(b, tmp[:n]...)
}

// escapable reports whether r must be \-escaped. All escapable runes fit in
// the Basic Multilingual Plane, so the \uXXXX form always suffices.
func escapable(r rune) bool {
	switch {
	case r == '"' || r == '\\':
	case r < 0x20:
	case r >= 0x7f && r <= 0x9f:
	case r == 0xad:
	case r >= 0x0600 && r <= 0x0604:
	case r == 0x070f:
	case r == 0x17b4 || r == 0x17b5:
	case r >= 0x200c && r <= 0x200f:
	case r >= 0x2028 && r <= 0x202f:
	case r >= 0x2060 && r <= 0x206f:
	case r == 0xfeff:
	case r >= 0xfff0 && r <= 0xffff:
	default:
		return false
	}
	return true
}

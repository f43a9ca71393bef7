/*
Package token implements the tagged-token wire form used by extjson to embed
values JSON cannot represent inside ordinary string literals.

A token has the shape

	data:<type>,<payload>

where <type> never contains a comma and <payload> is everything after the
first comma, commas included. The helpers here are usable standalone, e.g. by
plugins implementing custom extended types.
*/
package token

import (
	"github.com/go-extjson/extjson/internal"
	"github.com/go-extjson/extjson/internal/parser"
)

// Scheme prefixes every tagged token.
const Scheme = "data:"

// Token types recognized by the extjson decoder. Plugins may introduce
// additional types; a type must not contain a comma.
const (
	TypeUndefined = "undefined"
	TypeNumber    = "number"
	TypeBigInt    = "bigint"
	TypeDate      = "date"
)

// Token is a decoded tagged token.
type Token struct {
	Type  string
	Value string
}

// Encode builds a tagged token. It performs no validation: type and value
// are caller-controlled.
func Encode(typ, value string) string {
	b := make([]byte, 0, len(Scheme)+len(typ)+1+len(value))
	b = append(b, Scheme...)
	b = append(b, typ...)
	b = append(b, ',')
	b = append(b, value...)
	return internal.BytesToString(b)
}

// Decode splits s into a Token if it has the token shape: the scheme prefix
// followed by at least one comma. The first comma separates type from
// payload; later commas belong to the payload. Strings without the token
// shape are reported with ok == false and are never transformed.
func Decode(s string) (tok Token, ok bool) {
	p := parser.NewString(s)
	if !p.Got(Scheme) {
		return Token{}, false
	}
	typ, ok := p.JumpTo(',')
	if !ok {
		return Token{}, false
	}
	return Token{
		Type:  internal.BytesToString(typ),
		Value: internal.BytesToString(p.Bytes()),
	}, true
}

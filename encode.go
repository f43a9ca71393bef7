package extjson

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vmihailenco/bufpool"

	"github.com/go-extjson/extjson/internal"
	"github.com/go-extjson/extjson/token"
)

// ReplacerFunc transforms a value during encoding. value is the output of
// the converter/plugin pipeline, raw the untouched original, path the keys
// and indices from the document root to the current node.
type ReplacerFunc func(key string, value, raw interface{}, path []interface{}) interface{}

var stringifyPool bufpool.Pool

// encodeState carries all mutable encoding state for one Stringify call.
// Keeping it per-call makes Stringify safe to re-enter from hooks.
type encodeState struct {
	plugins  []Plugin
	replacer ReplacerFunc
	include  []string
	filtered bool
	indent   string
	path     []interface{}
}

// Stringify encodes v as extended JSON. replacer is nil, a ReplacerFunc, or
// an inclusion list of property names ([]string or a slice whose string
// entries are honored). space is an indent width (non-negative int), an
// indent string, or anything else for compact output.
func (e *Engine) Stringify(v, replacer, space interface{}) (string, error) {
	es := &encodeState{
		plugins: e.plugins,
		path:    make([]interface{}, 0, 8),
	}
	if err := es.setReplacer(replacer); err != nil {
		return "", err
	}
	es.setIndent(space)

	buf := stringifyPool.Get()
	defer stringifyPool.Put(buf)

	b, ok, err := es.appendAny(buf.Bytes()[:0], "", v, 0)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return string(b), nil
}

func (es *encodeState) setReplacer(replacer interface{}) error {
	switch r := replacer.(type) {
	case nil:
		return nil
	case ReplacerFunc:
		es.replacer = r
		return nil
	case func(key string, value, raw interface{}, path []interface{}) interface{}:
		es.replacer = r
		return nil
	case []string:
		es.include = uniqueKeys(len(r), func(i int) (string, bool) {
			return r[i], true
		})
		es.filtered = true
		return nil
	}

	rv := reflect.ValueOf(replacer)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		es.include = uniqueKeys(rv.Len(), func(i int) (string, bool) {
			s, ok := rv.Index(i).Interface().(string)
			return s, ok
		})
		es.filtered = true
		return nil
	}
	return ErrInvalidReplacer
}

// uniqueKeys collects string entries in order, keeping the first occurrence
// of each so duplicate list entries emit at most one field.
func uniqueKeys(n int, get func(int) (string, bool)) []string {
	keys := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		s, ok := get(i)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		keys = append(keys, s)
	}
	return keys
}

func (es *encodeState) setIndent(space interface{}) {
	switch s := space.(type) {
	case int:
		if s > 0 {
			es.indent = strings.Repeat(" ", s)
		}
	case float64:
		if s > 0 {
			es.indent = strings.Repeat(" ", int(s))
		}
	case string:
		es.indent = s
	}
}

// appendAny runs the per-node transform pipeline and dispatches on the
// resulting category. ok == false means the value has no representation and
// the caller decides: skip the field, emit null in an array, or return empty
// output at the root.
func (es *encodeState) appendAny(b []byte, key string, v interface{}, depth int) ([]byte, bool, error) {
	raw := v

	if conv, ok := v.(ValueConverter); ok {
		if _, isTime := v.(time.Time); !isTime {
			v = conv.ConvertValue(key)
		}
	}
	for _, p := range es.plugins {
		if p.Encode != nil {
			v = p.Encode(key, v, raw)
		}
	}
	if es.replacer != nil {
		v = es.replacer(key, v, raw, es.path)
	}

	k, v := classify(v)
	switch k {
	case kindNull:
		return append(b, "null"...), true, nil
	case kindAbsent:
		return appendToken(b, token.TypeUndefined, ""), true, nil
	case kindString:
		return token.AppendQuote(b, v.(string)), true, nil
	case kindBoolean:
		return strconv.AppendBool(b, v.(bool)), true, nil
	case kindFiniteNumber:
		return appendNumber(b, v), true, nil
	case kindNonFiniteNumber:
		return appendToken(b, token.TypeNumber, nonFinitePayload(v.(float64))), true, nil
	case kindBigInteger:
		return appendToken(b, token.TypeBigInt, v.(*big.Int).String()), true, nil
	case kindTimestamp:
		ms := strconv.FormatInt(v.(time.Time).UnixMilli(), 10)
		return appendToken(b, token.TypeDate, ms), true, nil
	case kindSequence:
		return es.appendArray(b, v, depth)
	case kindKeyed:
		return es.appendObject(b, v, depth)
	}
	return b, false, nil
}

func appendToken(b []byte, typ, payload string) []byte {
	return token.AppendQuote(b, token.Encode(typ, payload))
}

func nonFinitePayload(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return "NaN"
}

func appendNumber(b []byte, v interface{}) []byte {
	switch n := v.(type) {
	case int64:
		return strconv.AppendInt(b, n, 10)
	case uint64:
		return strconv.AppendUint(b, n, 10)
	case json.Number:
		return append(b, n.String()...)
	}
	return appendFloat(b, v.(float64))
}

// appendFloat formats f the way encoding/json does, so the plain-JSON subset
// is byte-compatible with the host marshaler.
func appendFloat(b []byte, f float64) []byte {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b = strconv.AppendFloat(b, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}

func (es *encodeState) appendIndent(b []byte, depth int) []byte {
	if es.indent == "" {
		return b
	}
	b = append(b, '\n')
	for i := 0; i < depth; i++ {
		b = append(b, es.indent...)
	}
	return b
}

func (es *encodeState) appendArray(b []byte, v interface{}, depth int) ([]byte, bool, error) {
	fast, _ := v.([]interface{})
	var rv reflect.Value
	n := len(fast)
	if fast == nil {
		rv = reflect.ValueOf(v)
		n = rv.Len()
	}
	if n == 0 {
		return append(b, "[]"...), true, nil
	}

	b = append(b, '[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = es.appendIndent(b, depth+1)

		var elem interface{}
		if fast != nil {
			elem = fast[i]
		} else {
			elem = rv.Index(i).Interface()
		}

		es.path = append(es.path, i)
		eb, ok, err := es.appendAny(b, strconv.Itoa(i), elem, depth+1)
		es.path = es.path[:len(es.path)-1]
		if err != nil {
			return nil, false, err
		}
		if !ok {
			// Elements without a representation hold their slot as null.
			b = append(b, "null"...)
		} else {
			b = eb
		}
	}
	b = es.appendIndent(b, depth)
	return append(b, ']'), true, nil
}

func (es *encodeState) appendObject(b []byte, v interface{}, depth int) ([]byte, bool, error) {
	fast, _ := v.(map[string]interface{})
	var rv reflect.Value
	if fast == nil {
		rv = reflect.ValueOf(v)
	}

	lookup := func(k string) (interface{}, bool) {
		if fast != nil {
			val, ok := fast[k]
			return val, ok
		}
		mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}

	var keys []string
	if es.filtered {
		keys = es.include
	} else if fast != nil {
		keys = make([]string, 0, len(fast))
		for k := range fast {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	} else {
		keys = make([]string, 0, rv.Len())
		for _, mk := range rv.MapKeys() {
			keys = append(keys, mk.String())
		}
		sort.Strings(keys)
	}

	b = append(b, '{')
	n := 0
	for _, k := range keys {
		val, ok := lookup(k)
		if !ok {
			continue
		}

		mark := len(b)
		if n > 0 {
			b = append(b, ',')
		}
		b = es.appendIndent(b, depth+1)
		b = token.AppendQuote(b, k)
		b = append(b, ':')
		if es.indent != "" {
			b = append(b, ' ')
		}

		es.path = append(es.path, k)
		eb, wrote, err := es.appendAny(b, k, val, depth+1)
		es.path = es.path[:len(es.path)-1]
		if err != nil {
			return nil, false, err
		}
		if !wrote {
			internal.Logf("extjson: skipping %T value at key %q", val, k)
			b = b[:mark]
			continue
		}
		b = eb
		n++
	}
	if n == 0 {
		return append(b, '}'), true, nil
	}
	b = es.appendIndent(b, depth)
	return append(b, '}'), true, nil
}

package extjson

import (
	"math/big"
	"strconv"
	"time"

	"github.com/go-extjson/extjson/internal"
	"github.com/go-extjson/extjson/token"
)

// Reviver transforms a value during decoding. value is the result of tag
// decoding, raw the value as the host parser produced it, tag the detected
// tagged token or nil.
type Reviver func(key string, value, raw interface{}, tag *token.Token) interface{}

// sentinelValue marks fields that decoded to Undefined. The sweep after the
// walk replaces sentinels with the Undefined value, so a later consumer can
// tell "explicitly absent" apart from "never set" without the walk having to
// special-case container stores.
type sentinelValue struct{}

var undefinedSentinel = &sentinelValue{}

type decodeState struct {
	plugins []Plugin
	reviver Reviver
}

// Parse decodes extended JSON. Structural parsing is delegated to the host
// JSON provider; its syntax errors are returned unchanged.
func (e *Engine) Parse(text string, reviver Reviver) (interface{}, error) {
	var root interface{}
	if err := internal.Json.Unmarshal(internal.StringToBytes(text), &root); err != nil {
		return nil, err
	}

	d := &decodeState{plugins: e.plugins, reviver: reviver}
	v, err := d.walk("", root)
	if err != nil {
		return nil, err
	}

	sweep(v)
	if _, ok := v.(*sentinelValue); ok {
		return Undefined, nil
	}
	return v, nil
}

// walk revives bottom-up: children first, then the node itself.
func (d *decodeState) walk(key string, v interface{}) (interface{}, error) {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, child := range vv {
			r, err := d.walk(k, child)
			if err != nil {
				return nil, err
			}
			vv[k] = r
		}
	case []interface{}:
		for i, child := range vv {
			r, err := d.walk(strconv.Itoa(i), child)
			if err != nil {
				return nil, err
			}
			vv[i] = r
		}
	}
	return d.revive(key, v)
}

func (d *decodeState) revive(key string, raw interface{}) (interface{}, error) {
	result := raw
	var tag *token.Token

	if s, ok := raw.(string); ok {
		if tok, ok := token.Decode(s); ok {
			tag = &tok
			r, matched, err := decodeToken(tok)
			if err != nil {
				return nil, err
			}
			if matched {
				result = r
			}
		}
	}

	if d.reviver != nil {
		result = d.reviver(key, result, raw, tag)
	}
	for _, p := range d.plugins {
		if p.Decode != nil {
			result = p.Decode(key, result, raw, tag)
		}
	}

	if _, ok := result.(UndefinedValue); ok {
		return undefinedSentinel, nil
	}
	return result, nil
}

// decodeToken maps a recognized token to its extended value. Tokens with an
// unrecognized type or an unparseable number payload report matched == false
// and stay ordinary strings.
func decodeToken(tok token.Token) (v interface{}, matched bool, err error) {
	switch tok.Type {
	case token.TypeUndefined:
		return Undefined, true, nil
	case token.TypeNumber:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, false, nil
		}
		return f, true, nil
	case token.TypeBigInt:
		n, ok := new(big.Int).SetString(tok.Value, 10)
		if !ok {
			return nil, false, internal.Errorf("extjson: invalid bigint payload %q", tok.Value)
		}
		return n, true, nil
	case token.TypeDate:
		ms, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, false, internal.Errorf("extjson: invalid date payload %q", tok.Value)
		}
		return time.UnixMilli(ms).UTC(), true, nil
	}
	return nil, false, nil
}

// sweep replaces undefined sentinels with the Undefined value. It drains a
// FIFO queue instead of recursing so arbitrarily deep documents cannot
// exhaust the stack; every reachable container is visited exactly once.
func sweep(root interface{}) {
	queue := []interface{}{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		switch nn := n.(type) {
		case map[string]interface{}:
			for k, v := range nn {
				if _, ok := v.(*sentinelValue); ok {
					nn[k] = Undefined
				} else {
					queue = enqueue(queue, v)
				}
			}
		case []interface{}:
			for i, v := range nn {
				if _, ok := v.(*sentinelValue); ok {
					nn[i] = Undefined
				} else {
					queue = enqueue(queue, v)
				}
			}
		}
	}
}

func enqueue(queue []interface{}, v interface{}) []interface{} {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return append(queue, v)
	}
	return queue
}

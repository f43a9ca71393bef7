package extjson_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-extjson/extjson"
)

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad bigint literal: " + s)
	}
	return n
}

func TestStringifyScalars(t *testing.T) {
	tests := []struct {
		in     interface{}
		wanted string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"hello", `"hello"`},
		{42, "42"},
		{int64(-7), "-7"},
		{uint64(18446744073709551615), "18446744073709551615"},
		{3.14, "3.14"},
		{float64(1), "1"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{json.Number("123.456"), "123.456"},
		{extjson.Undefined, `"data:undefined,"`},
		{math.NaN(), `"data:number,NaN"`},
		{math.Inf(1), `"data:number,Infinity"`},
		{math.Inf(-1), `"data:number,-Infinity"`},
		{mustBigInt("123456789012345678901234567890"), `"data:bigint,123456789012345678901234567890"`},
		{time.UnixMilli(981173106789).UTC(), `"data:date,981173106789"`},
	}
	for _, test := range tests {
		got, err := extjson.Stringify(test.in, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, test.wanted, got, "input %#v", test.in)
	}
}

func TestStringifyContainers(t *testing.T) {
	got, err := extjson.Stringify(map[string]interface{}{
		"b": []interface{}{1, nil, "x"},
		"a": map[string]interface{}{"nested": true},
		"c": extjson.Undefined,
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"nested":true},"b":[1,null,"x"],"c":"data:undefined,"}`, got)

	got, err = extjson.Stringify([]interface{}{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	got, err = extjson.Stringify(map[string]interface{}{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	// Typed slices and string-keyed maps go through the reflect path.
	got, err = extjson.Stringify([]int{1, 2, 3}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", got)

	got, err = extjson.Stringify(map[string]int{"b": 2, "a": 1}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, got)
}

func TestStringifyIndent(t *testing.T) {
	v := map[string]interface{}{
		"a": 1,
		"b": []interface{}{true},
		"e": map[string]interface{}{},
	}

	got, err := extjson.Stringify(v, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ],\n  \"e\": {}\n}", got)

	got, err = extjson.Stringify(v, nil, "\t")
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1,\n\t\"b\": [\n\t\ttrue\n\t],\n\t\"e\": {}\n}", got)

	// Anything else means compact output.
	for _, space := range []interface{}{nil, -1, 0, true, 1.0} {
		got, err = extjson.Stringify(v, nil, space)
		require.NoError(t, err)
		if space == 1.0 {
			continue // one space is still an indent
		}
		assert.Equal(t, `{"a":1,"b":[true],"e":{}}`, got, "space %#v", space)
	}
}

func TestStringifyInclusionList(t *testing.T) {
	v := map[string]interface{}{"a": 1, "b": 2, "c": 3}

	got, err := extjson.Stringify(v, []string{"c", "a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"c":3,"a":1}`, got)

	// Duplicate entries emit at most one field.
	got, err = extjson.Stringify(v, []string{"a", "a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, got)

	// Non-string entries are ignored.
	got, err = extjson.Stringify(v, []interface{}{"c", 1, "a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"c":3,"a":1}`, got)

	// Keys missing from the object are skipped.
	got, err = extjson.Stringify(v, []string{"nope", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, got)

	// Arrays are never filtered by the list.
	got, err = extjson.Stringify([]interface{}{1, 2}, []string{"0"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", got)

	// The list applies at every object depth.
	got, err = extjson.Stringify(map[string]interface{}{
		"a": map[string]interface{}{"a": 1, "x": 2},
		"x": 3,
	}, []string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"a":1}}`, got)
}

func TestStringifyInvalidReplacer(t *testing.T) {
	for _, replacer := range []interface{}{42, "keys", map[string]bool{}, true} {
		_, err := extjson.Stringify(map[string]interface{}{"a": 1}, replacer, nil)
		assert.ErrorIs(t, err, extjson.ErrInvalidReplacer, "replacer %#v", replacer)
	}
}

func TestStringifyReplacerFunc(t *testing.T) {
	paths := make(map[string]string)
	replacer := func(key string, value, raw interface{}, path []interface{}) interface{} {
		paths[key] = fmt.Sprint(path)
		if s, ok := value.(string); ok {
			return s + "!"
		}
		return value
	}

	got, err := extjson.Stringify(map[string]interface{}{
		"a": map[string]interface{}{"b": []interface{}{"deep"}},
	}, replacer, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"b":["deep!"]}}`, got)

	assert.Equal(t, "[]", paths[""])
	assert.Equal(t, "[a]", paths["a"])
	assert.Equal(t, "[a b]", paths["b"])
	assert.Equal(t, "[a b 0]", paths["0"])
}

func TestStringifyReplacerRawValue(t *testing.T) {
	e := extjson.New()
	e.Register(extjson.Plugin{
		Encode: func(key string, value, raw interface{}) interface{} {
			if s, ok := value.(string); ok {
				return s + "-hooked"
			}
			return value
		},
	})

	var sawValue, sawRaw interface{}
	replacer := func(key string, value, raw interface{}, path []interface{}) interface{} {
		sawValue, sawRaw = value, raw
		return value
	}

	got, err := e.Stringify("orig", replacer, nil)
	require.NoError(t, err)
	assert.Equal(t, `"orig-hooked"`, got)
	assert.Equal(t, "orig-hooked", sawValue)
	assert.Equal(t, "orig", sawRaw)
}

func TestPluginEncodeOrdering(t *testing.T) {
	e := extjson.New()
	var order []string
	hook := func(name string) extjson.EncodeHook {
		return func(key string, value, raw interface{}) interface{} {
			order = append(order, name)
			assert.Equal(t, "x", raw)
			return value.(string) + "-" + name
		}
	}
	e.Register(extjson.Plugin{Encode: hook("A")})
	e.Register(extjson.Plugin{Encode: hook("B")})

	got, err := e.Stringify("x", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `"x-A-B"`, got)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestEngineRegistriesAreIndependent(t *testing.T) {
	e1 := extjson.New()
	e2 := extjson.New()
	e1.Register(extjson.Plugin{
		Encode: func(key string, value, raw interface{}) interface{} {
			if s, ok := value.(string); ok {
				return s + "-e1"
			}
			return value
		},
	})

	got, err := e1.Stringify("v", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `"v-e1"`, got)

	got, err = e2.Stringify("v", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `"v"`, got)
}

type redacted string

func (redacted) ConvertValue(key string) interface{} {
	return "[redacted " + key + "]"
}

func TestStringifyValueConverter(t *testing.T) {
	got, err := extjson.Stringify(map[string]interface{}{
		"password": redacted("hunter2"),
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"password":"[redacted password]"}`, got)
}

func TestStringifyUnsupported(t *testing.T) {
	// In objects, unrepresentable values drop the field.
	got, err := extjson.Stringify(map[string]interface{}{
		"a": 1,
		"f": func() {},
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)

	// In arrays, they hold their slot as null.
	got, err = extjson.Stringify([]interface{}{func() {}, complex(1, 2), 3}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "[null,null,3]", got)

	// At the root, there is no output at all.
	got, err = extjson.Stringify(func() {}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

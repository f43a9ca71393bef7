// Package extjsonext provides optional plugins built on the standalone token
// helpers, showing how custom extended types plug into extjson.
package extjsonext

import (
	"reflect"
	"strings"

	hex "github.com/tmthrgd/go-hex"
	"github.com/vmihailenco/bufpool"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/go-extjson/extjson"
	"github.com/go-extjson/extjson/token"
)

const (
	bytesTokenType   = "bytes"
	msgpackTokenType = "msgpack"
)

// Bytes returns a plugin that carries []byte values through the codec as
// data:bytes,<hex> tokens. Without it, byte slices encode as number arrays.
func Bytes() extjson.Plugin {
	return extjson.Plugin{
		Encode: func(key string, value, raw interface{}) interface{} {
			b, ok := value.([]byte)
			if !ok {
				return value
			}
			return token.Encode(bytesTokenType, hex.EncodeToString(b))
		},
		Decode: func(key string, value, raw interface{}, tag *token.Token) interface{} {
			if tag == nil || tag.Type != bytesTokenType {
				return value
			}
			b, err := hex.DecodeString(tag.Value)
			if err != nil {
				return value
			}
			return b
		},
	}
}

var msgpackPool bufpool.Pool

// Msgpack returns a plugin that round-trips values of concrete type T
// through msgpack as data:msgpack,<type>,<hex> tokens. The comma inside the
// payload is safe: token decoding splits on the first comma only, so the
// type/hex split happens here, inside the payload.
func Msgpack[T any]() extjson.Plugin {
	name := reflect.TypeOf((*T)(nil)).Elem().String()

	return extjson.Plugin{
		Encode: func(key string, value, raw interface{}) interface{} {
			v, ok := value.(T)
			if !ok {
				return value
			}

			buf := msgpackPool.Get()
			defer msgpackPool.Put(buf)

			if err := msgpack.NewEncoder(buf).Encode(v); err != nil {
				return value
			}
			return token.Encode(msgpackTokenType, name+","+hex.EncodeToString(buf.Bytes()))
		},
		Decode: func(key string, value, raw interface{}, tag *token.Token) interface{} {
			if tag == nil || tag.Type != msgpackTokenType {
				return value
			}
			typeName, payload, ok := strings.Cut(tag.Value, ",")
			if !ok || typeName != name {
				return value
			}

			b, err := hex.DecodeString(payload)
			if err != nil {
				return value
			}
			var v T
			if err := msgpack.Unmarshal(b, &v); err != nil {
				return value
			}
			return v
		},
	}
}

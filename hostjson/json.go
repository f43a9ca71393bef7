// Package hostjson provides pluggable providers for the structural JSON
// parsing extjson delegates to. Swap with extjson.SetJSONProvider.
package hostjson

import (
	"encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"
	json2 "github.com/segmentio/encoding/json"

	"github.com/go-extjson/extjson/internal"
)

type Provider = internal.JsonProvider

type Encoder = internal.JsonEncoder

type Decoder = internal.JsonDecoder

var _ Provider = (*StdProvider)(nil)

// StdProvider uses encoding/json. It is the default.
type StdProvider struct{}

func (StdProvider) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (StdProvider) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (StdProvider) NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

func (StdProvider) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

var _ Provider = (*SegmentioProvider)(nil)

type SegmentioProvider struct{}

func (SegmentioProvider) Marshal(v interface{}) ([]byte, error) {
	return json2.Marshal(v)
}

func (SegmentioProvider) Unmarshal(data []byte, v interface{}) error {
	return json2.Unmarshal(data, v)
}

func (SegmentioProvider) NewEncoder(w io.Writer) Encoder {
	return json2.NewEncoder(w)
}

func (SegmentioProvider) NewDecoder(r io.Reader) Decoder {
	return json2.NewDecoder(r)
}

var jsoniterAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var _ Provider = (*JsoniterProvider)(nil)

type JsoniterProvider struct{}

func (JsoniterProvider) Marshal(v interface{}) ([]byte, error) {
	return jsoniterAPI.Marshal(v)
}

func (JsoniterProvider) Unmarshal(data []byte, v interface{}) error {
	return jsoniterAPI.Unmarshal(data, v)
}

func (JsoniterProvider) NewEncoder(w io.Writer) Encoder {
	return jsoniterAPI.NewEncoder(w)
}

func (JsoniterProvider) NewDecoder(r io.Reader) Decoder {
	return jsoniterAPI.NewDecoder(r)
}

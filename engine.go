package extjson

import (
	"github.com/go-extjson/extjson/token"
)

// EncodeHook transforms a value during encoding. It receives the output of
// the previous pipeline step as value and the untouched original as raw.
type EncodeHook func(key string, value, raw interface{}) interface{}

// DecodeHook transforms a value during decoding. tag is the detected tagged
// token, or nil when the raw value did not have the token shape.
type DecodeHook func(key string, value, raw interface{}, tag *token.Token) interface{}

// Plugin is a pair of optional encode/decode hooks. Registered plugins run
// in registration order on every visited node.
type Plugin struct {
	Encode EncodeHook
	Decode DecodeHook
}

// Engine is an encode/decode pipeline with its own plugin registry. Engines
// are independent: plugins registered on one never affect another.
type Engine struct {
	plugins []Plugin
}

// New returns an Engine with an empty plugin registry.
func New() *Engine {
	return &Engine{}
}

// Register appends plugins to the registry. There is no de-duplication and
// no requirement that a plugin carries both hooks.
func (e *Engine) Register(plugins ...Plugin) {
	e.plugins = append(e.plugins, plugins...)
}

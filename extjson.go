/*
Package extjson encodes and decodes JSON extended with values the format
cannot natively represent: explicitly absent values, NaN and the infinities,
arbitrary-precision integers, and timestamps. Extended values travel as
ordinary string literals of the form "data:<type>,<payload>", so the output
stays valid JSON for any standard parser.

The package-level functions operate on a shared default engine. New returns
an independent engine with its own plugin registry.
*/
package extjson

import (
	"log"

	"github.com/go-extjson/extjson/hostjson"
	"github.com/go-extjson/extjson/internal"
)

var defaultEngine = New()

func init() {
	SetJSONProvider(hostjson.StdProvider{})
}

// Stringify encodes v on the default engine. See Engine.Stringify.
func Stringify(v, replacer, space interface{}) (string, error) {
	return defaultEngine.Stringify(v, replacer, space)
}

// Parse decodes text on the default engine. See Engine.Parse.
func Parse(text string, reviver Reviver) (interface{}, error) {
	return defaultEngine.Parse(text, reviver)
}

// Register registers plugins on the default engine.
func Register(plugins ...Plugin) {
	defaultEngine.Register(plugins...)
}

type JSONProvider = internal.JsonProvider

// SetJSONProvider sets the provider used for structural JSON parsing. The
// default is hostjson.StdProvider (encoding/json).
func SetJSONProvider(provider JSONProvider) {
	internal.Json = provider
}

// SetLogger sets the logger used for diagnostics, e.g. when an
// unrepresentable value is skipped. Logging is off by default.
func SetLogger(logger *log.Logger) {
	internal.Logger = logger
}

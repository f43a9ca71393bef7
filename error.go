package extjson

import "github.com/go-extjson/extjson/internal"

// ErrInvalidReplacer is returned by Stringify when the replacer argument is
// neither nil, a replacer function, nor a key list.
var ErrInvalidReplacer = internal.Errorf("extjson: replacer must be a function, a key list, or nil")

package extjson

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"time"
)

// UndefinedValue is the type of Undefined, the explicitly-absent value.
type UndefinedValue struct{}

// Undefined represents a value that is present but absent, as opposed to
// JSON null. It survives a Stringify/Parse round trip as a "data:undefined,"
// token.
var Undefined UndefinedValue

// ValueConverter is implemented by values that replace themselves with a
// serializable value before encoding. The conversion runs once per node,
// before plugin hooks and the replacer.
type ValueConverter interface {
	ConvertValue(key string) interface{}
}

// kind is the closed set of semantic categories the codec dispatches on.
// Every value is classified exactly once before encoding.
type kind int

const (
	kindNull kind = iota
	kindAbsent
	kindString
	kindFiniteNumber
	kindNonFiniteNumber
	kindBigInteger
	kindBoolean
	kindTimestamp
	kindSequence
	kindKeyed
	kindUnsupported
)

// classify maps v to its category and a normalized value: signed ints become
// int64, unsigned become uint64, float32 becomes float64, non-nil pointers
// are dereferenced. Sequences and keyed values are returned as-is.
func classify(v interface{}) (kind, interface{}) {
	switch vv := v.(type) {
	case nil:
		return kindNull, nil
	case UndefinedValue:
		return kindAbsent, vv
	case string:
		return kindString, vv
	case bool:
		return kindBoolean, vv
	case int:
		return kindFiniteNumber, int64(vv)
	case int8:
		return kindFiniteNumber, int64(vv)
	case int16:
		return kindFiniteNumber, int64(vv)
	case int32:
		return kindFiniteNumber, int64(vv)
	case int64:
		return kindFiniteNumber, vv
	case uint:
		return kindFiniteNumber, uint64(vv)
	case uint8:
		return kindFiniteNumber, uint64(vv)
	case uint16:
		return kindFiniteNumber, uint64(vv)
	case uint32:
		return kindFiniteNumber, uint64(vv)
	case uint64:
		return kindFiniteNumber, vv
	case float32:
		return classifyFloat(float64(vv))
	case float64:
		return classifyFloat(vv)
	case json.Number:
		return kindFiniteNumber, vv
	case *big.Int:
		if vv == nil {
			return kindNull, nil
		}
		return kindBigInteger, vv
	case time.Time:
		return kindTimestamp, vv
	case []interface{}:
		if vv == nil {
			return kindNull, nil
		}
		return kindSequence, vv
	case map[string]interface{}:
		if vv == nil {
			return kindNull, nil
		}
		return kindKeyed, vv
	}
	return classifyValue(reflect.ValueOf(v))
}

func classifyFloat(f float64) (kind, interface{}) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return kindNonFiniteNumber, f
	}
	return kindFiniteNumber, f
}

func classifyValue(rv reflect.Value) (kind, interface{}) {
	switch rv.Kind() {
	case reflect.Bool:
		return kindBoolean, rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindFiniteNumber, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindFiniteNumber, rv.Uint()
	case reflect.Float32, reflect.Float64:
		return classifyFloat(rv.Float())
	case reflect.String:
		return kindString, rv.String()
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return kindNull, nil
		}
		return classify(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return kindNull, nil
		}
		return kindSequence, rv.Interface()
	case reflect.Array:
		return kindSequence, rv.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return kindNull, nil
		}
		if rv.Type().Key().Kind() == reflect.String {
			return kindKeyed, rv.Interface()
		}
	}
	return kindUnsupported, rv.Interface()
}

package config

import (
	"reflect"
	"strings"

	"github.com/neuronlabs/dbhelper/errors"
)

var (
	truthy = map[string]struct{}{"true": {}, "yes": {}, "on": {}, "y": {}, "t": {}, "1": {}}
	falsy  = map[string]struct{}{"false": {}, "no": {}, "off": {}, "n": {}, "f": {}, "0": {}}
)

// AsBool converts the setting value 'v' into a boolean.
// A string is trimmed and lower cased and then it must be one of:
//	true:  true, yes, on, y, t, 1
//	false: false, no, off, n, f, 0
// otherwise an error of ErrInvalidBoolean class is returned.
// Any other value is converted by its truthiness - zero numbers, nil and empty collections are false.
func AsBool(v interface{}) (bool, error) {
	switch vt := v.(type) {
	case string:
		return ParseBool(vt)
	case bool:
		return vt, nil
	case nil:
		return false, nil
	}
	return truthiness(reflect.ValueOf(v)), nil
}

// ParseBool parses the string 's' by the AsBool rules.
func ParseBool(s string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if _, ok := truthy[normalized]; ok {
		return true, nil
	}
	if _, ok := falsy[normalized]; ok {
		return false, nil
	}
	return false, errors.WrapDetf(ErrInvalidBoolean, "string is not true/false: '%s'", normalized)
}

func truthiness(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return v.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return v.Len() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !v.IsNil()
	default:
		return true
	}
}

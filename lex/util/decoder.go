package util

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrMissingType = errors.New("lexicon object missing $type field")
var ErrUnrecognizedType = errors.New("unrecognized lexicon type")

var lexTypesMap map[string]reflect.Type

func init() {
	lexTypesMap = make(map[string]reflect.Type)
}

// RegisterType associates a lexicon "$type" with the Go type of val. It is
// meant to be called from package init functions, and panics on duplicates.
func RegisterType(id string, val any) {
	t := reflect.TypeOf(val)

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if _, ok := lexTypesMap[id]; ok {
		panic(fmt.Sprintf("already registered type for %q", id))
	}

	lexTypesMap[id] = t
}

// NewFromType returns a pointer to a new zero value of the Go type registered
// for typ.
func NewFromType(typ string) (any, error) {
	t, ok := lexTypesMap[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedType, typ)
	}
	return reflect.New(t).Interface(), nil
}

// JsonDecodeValue decodes a JSON lexicon object in to the Go type registered
// for its "$type", returning a pointer to it. Decoding is field by field, as
// in UnmarshalLenient: a field whose value has the wrong shape is left unset.
func JsonDecodeValue(b []byte) (any, error) {
	tstr, err := TypeExtract(b)
	if err != nil {
		return nil, err
	}
	if tstr == "" {
		return nil, ErrMissingType
	}

	ival, err := NewFromType(tstr)
	if err != nil {
		return nil, err
	}

	if err := UnmarshalLenient(b, ival); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", tstr, err)
	}

	return ival, nil
}

package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// UnmarshalLenient decodes a JSON object in to the struct that v points to,
// one field at a time. A field that fails to decode is left at its zero
// value, and so is a slice element that fails to decode. Nested structs are
// decoded the same way; types with their own UnmarshalJSON (lexicon unions)
// are decoded whole. Only input that isn't a JSON object is an error.
func UnmarshalLenient(b []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("lenient decode needs a non-nil pointer, got %T", v)
	}
	return decodeLenient(b, rv.Elem())
}

var jsonNull = []byte("null")

func decodeLenient(b []byte, rv reflect.Value) error {
	if u, ok := rv.Addr().Interface().(json.Unmarshaler); ok {
		return u.UnmarshalJSON(b)
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
			rv.SetZero()
			return nil
		}
		elem := reflect.New(rv.Type().Elem())
		if err := decodeLenient(b, elem.Elem()); err != nil {
			return err
		}
		rv.Set(elem)
		return nil

	case reflect.Struct:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(b, &fields); err != nil {
			return err
		}
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			name := jsonName(sf)
			if name == "" {
				continue
			}
			raw, ok := fields[name]
			if !ok {
				continue
			}
			if err := decodeLenient(raw, rv.Field(i)); err != nil {
				rv.Field(i).SetZero()
			}
		}
		return nil

	case reflect.Slice:
		if !hasFields(rv.Type().Elem()) {
			return json.Unmarshal(b, rv.Addr().Interface())
		}
		var raws []json.RawMessage
		if err := json.Unmarshal(b, &raws); err != nil {
			return err
		}
		if raws == nil {
			rv.SetZero()
			return nil
		}
		out := reflect.MakeSlice(rv.Type(), 0, len(raws))
		for _, raw := range raws {
			elem := reflect.New(rv.Type().Elem()).Elem()
			if err := decodeLenient(raw, elem); err != nil {
				continue
			}
			out = reflect.Append(out, elem)
		}
		rv.Set(out)
		return nil

	default:
		return json.Unmarshal(b, rv.Addr().Interface())
	}
}

// jsonName is the object key a struct field decodes from, or "" if the field
// is skipped.
func jsonName(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	default:
		return name
	}
}

// hasFields reports whether t is a struct, or a pointer to one.
func hasFields(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

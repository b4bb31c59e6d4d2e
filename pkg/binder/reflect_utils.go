package binder

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/trekcheck/trekcheck/pkg/sanitizer"
)

func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// bindToStruct copies values into the fields of the struct v points to,
// matched by the tagName struct tag. Fields without the tag are skipped.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, _, _ := strings.Cut(fieldType.Tag.Get(tagName), ",")
		if name == "" || name == "-" {
			continue
		}

		fieldValues, ok := values[name]
		if !ok || len(fieldValues) == 0 {
			continue
		}
		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	switch fieldType.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	case reflect.Slice:
		slice := reflect.MakeSlice(fieldType, len(values), len(values))
		for i, value := range values {
			if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{value}); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	value := strings.TrimSpace(values[0])

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		if value == "" {
			return nil
		}
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		switch strings.ToLower(value) {
		case "1", "true", "on", "yes":
			field.SetBool(true)
		case "", "0", "false", "off", "no":
			field.SetBool(false)
		default:
			return fmt.Errorf("invalid bool value %q", value)
		}

	default:
		return fmt.Errorf("unsupported type %s", fieldType)
	}
	return nil
}

// trimStrings trims every settable string reachable from v through structs
// and pointers.
func trimStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		trimValue(rv.Elem())
	}
}

func trimValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizer.Trim(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			trimValue(rv.Field(i))
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			trimValue(rv.Elem())
		}
	case reflect.Slice:
		for i := range rv.Len() {
			trimValue(rv.Index(i))
		}
	}
}

package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory bounds the memory used for multipart form values.
const DefaultMaxMemory = 1 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies to fields tagged `form:"name"`. Uploaded files are ignored.
//
// Supported field kinds: string (including named string types), integers,
// unsigned integers, floats, bool, pointers to these and slices of these.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mt, params, err := mediaType(r, "application/x-www-form-urlencoded", "multipart/form-data")
		if err != nil {
			return err
		}

		var values map[string][]string
		switch mt {
		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing multipart boundary", ErrFailedToParseForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value
		default:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm
		}

		if err := bindToStruct(v, "form", values, ErrFailedToParseForm); err != nil {
			return err
		}
		trimStrings(v)
		return nil
	}
}

package binder

import (
	"fmt"
	"mime"
	"net/http"
	"slices"
)

// mediaType returns the request media type when it is one of accepted.
// Anything else yields an error wrapping ErrBinderNotApplicable.
func mediaType(r *http.Request, accepted ...string) (string, map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", nil, fmt.Errorf("%w: missing content type", ErrBinderNotApplicable)
	}
	mt, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w: %v", ErrBinderNotApplicable, ErrUnsupportedMediaType, err)
	}
	if !slices.Contains(accepted, mt) {
		return "", nil, fmt.Errorf("%w: %s", ErrBinderNotApplicable, mt)
	}
	return mt, params, nil
}

// Package binder decodes HTTP request bodies into structs.
//
// Each binder handles one family of content types and returns an error
// wrapping ErrBinderNotApplicable for anything else, so several binders can be
// tried in turn:
//
//	handler.Wrap(check, handler.WithBinders[handler.Context, CheckRequest](
//	    binder.JSON(),
//	    binder.Form(),
//	))
//
// JSON decoding is strict: unknown fields, trailing data and bodies over
// DefaultMaxJSONSize are rejected. Form binding maps `form:"name"` tags to
// url-encoded or multipart fields. Both binders trim surrounding whitespace
// from every string field.
package binder

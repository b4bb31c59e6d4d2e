// Package handler provides type-safe HTTP handlers.
//
// A HandlerFunc receives a Context and a request value already bound from
// the HTTP request and returns a Response:
//
//	func check(ctx handler.Context, req CheckRequest) handler.Response {
//		report, err := svc.Check(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(report)
//	}
//
//	r.Post("/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, CheckRequest](handler.NewErrorHandler(log)),
//	))
//
// Binders returning binder.ErrBinderNotApplicable are skipped. When binders
// are configured and none of them accepts the request, the error handler
// receives ErrUnsupportedMediaType.
//
// JSON responses use a {data, meta, error} envelope. Validation errors from
// pkg/validator render as 422 with per-field details; HTTPError values keep
// their status code and key.
package handler

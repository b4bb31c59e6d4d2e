package combination

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trekcheck/trekcheck/handler"
	"github.com/trekcheck/trekcheck/pkg/binder"
	"github.com/trekcheck/trekcheck/pkg/clientip"
	"github.com/trekcheck/trekcheck/pkg/httpserver"
	"github.com/trekcheck/trekcheck/pkg/i18n"
	"github.com/trekcheck/trekcheck/pkg/ratelimiter"
	"github.com/trekcheck/trekcheck/pkg/requestid"
)

// Handle returns the HTTP API of the service.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	errorHandler := handler.NewErrorHandler(s.log)

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(s.trustedHeaders...))
	r.Use(i18n.Middleware(
		i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(s.Languages()...)),
		s.tr.DefaultLanguage(),
	))

	var check chi.Router = r
	if s.limiter != nil {
		check = r.With(ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP,
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
			}),
		))
	}
	check.Post("/check", handler.Wrap(s.check,
		handler.WithBinders[handler.Context, CheckRequest](
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, CheckRequest](errorHandler),
	))
	r.Get("/licenses", handler.Wrap(s.licenses,
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.Get("/schema/{name}", handler.Wrap(s.schema,
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	return r
}

func (s *Service) check(ctx handler.Context, req CheckRequest) handler.Response {
	report, err := s.Check(ctx, req)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(report)
}

func (s *Service) licenses(_ handler.Context, _ struct{}) handler.Response {
	classes := s.Licenses()
	return handler.JSON(classes, handler.WithJSONMeta(map[string]any{
		"count": len(classes),
	}))
}

func (s *Service) schema(ctx handler.Context, _ struct{}) handler.Response {
	data, err := Schema(chi.URLParam(ctx.Request(), "name"))
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}
	return handler.Blob("application/schema+json", data)
}

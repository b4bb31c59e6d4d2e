package combination

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trekcheck/trekcheck/pkg/i18n"
	"github.com/trekcheck/trekcheck/pkg/license"
	"github.com/trekcheck/trekcheck/pkg/logger"
	"github.com/trekcheck/trekcheck/pkg/ratelimiter"
	"github.com/trekcheck/trekcheck/pkg/sanitizer"
	"github.com/trekcheck/trekcheck/pkg/towing"
	"github.com/trekcheck/trekcheck/pkg/validator"
)

// Service evaluates car and trailer combinations against a license table and
// renders the outcome in the caller's language. It is safe for concurrent use.
type Service struct {
	registry *license.Registry
	tr       *i18n.Translator
	log      *slog.Logger

	limiter        *ratelimiter.Limiter
	trustedHeaders []string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger that receives one record per check.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRateLimiter limits POST /check per client IP.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

// WithTrustedProxyHeaders names the headers that carry the client IP when the
// API runs behind a reverse proxy.
func WithTrustedProxyHeaders(headers ...string) Option {
	return func(s *Service) {
		s.trustedHeaders = append(s.trustedHeaders, headers...)
	}
}

// New returns a Service evaluating against registry and rendering with tr.
func New(registry *license.Registry, tr *i18n.Translator, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if tr == nil {
		return nil, ErrNilTranslator
	}

	s := &Service{
		registry: registry,
		tr:       tr,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Check validates req, evaluates the combination it describes and renders the
// verdict. Request problems are returned as validator.ValidationErrors with
// localized messages; a request without car or trailer data still yields a
// Report holding the missing-input error.
func (s *Service) Check(ctx context.Context, req CheckRequest) (Report, error) {
	start := time.Now()
	lang := s.Language(ctx, req.Lang)
	car, trailer := req.CarRecord(), req.TrailerRecord()

	if err := validator.Apply(s.rules(req, car, trailer)...); err != nil {
		return Report{}, s.translateErrors(lang, err)
	}

	limit, err := s.registry.Lookup(req.License)
	if err != nil {
		return Report{}, fmt.Errorf("combination: %w", err)
	}

	verdict := towing.Evaluate(car, trailer, &limit)
	report := s.localize(lang, verdict)
	report.License = limit

	s.log.LogAttrs(ctx, slog.LevelInfo, "combination checked",
		logger.Component("combination"),
		logger.LicenseClass(limit.ClassLabel),
		logger.Plate("car", plateOf(car)),
		logger.Plate("trailer", plateOf(trailer)),
		logger.Locale(lang),
		slog.Int("total_weight", verdict.TotalWeight),
		logger.Verdict(verdict.IsValid, len(verdict.Errors)),
		logger.Duration(time.Since(start)),
	)
	return report, nil
}

// Language picks the rendering language: requested when supported, then the
// locale negotiated into ctx, then the translator default.
func (s *Service) Language(ctx context.Context, requested string) string {
	if lang := sanitizer.TrimToLower(requested); s.tr.IsSupported(lang) {
		return lang
	}
	if lang, ok := i18n.LocaleFromContext(ctx); ok && s.tr.IsSupported(lang) {
		return lang
	}
	return s.tr.DefaultLanguage()
}

// Languages returns the languages reports can be rendered in.
func (s *Service) Languages() []string {
	return s.tr.SupportedLanguages()
}

// Licenses returns the license classes in table order.
func (s *Service) Licenses() []license.Class {
	return s.registry.Classes()
}

// T renders key in lang. The CLI uses it for its own labels.
func (s *Service) T(lang, key string) string {
	return s.tr.T(lang, key)
}

func (s *Service) translateErrors(lang string, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}
	return verrs.Translate(func(key string, values map[string]any) string {
		return s.tr.Td(lang, key, "", i18n.Args(values)...)
	})
}

func plateOf(rec *towing.VehicleRecord) string {
	if rec == nil {
		return ""
	}
	return rec.PlateID
}

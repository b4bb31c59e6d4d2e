// Package logger builds log/slog loggers with consistent defaults and
// attribute names.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "combination checked",
//	    logger.LicenseClass("BE"),
//	    logger.Verdict(verdict.IsValid, len(verdict.Errors)),
//	)
//
// Context extractors run on every record, so request-scoped values such as
// request ids and locales appear without passing them explicitly.
package logger

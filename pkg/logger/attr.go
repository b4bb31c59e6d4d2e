package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// LicenseClass records a driving license class label under the key "license".
func LicenseClass(label string) slog.Attr {
	return slog.String("license", label)
}

// Plate records a registration plate. Empty plates are omitted.
func Plate(role, plate string) slog.Attr {
	if plate == "" {
		return slog.Attr{}
	}
	return slog.String(role+"_plate", plate)
}

// Verdict groups the outcome of a combination check under the key "verdict".
func Verdict(valid bool, errorCount int) slog.Attr {
	return Group("verdict",
		slog.Bool("valid", valid),
		slog.Int("errors", errorCount),
	)
}

package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code")
	ErrNoTranslations       = errors.New("no translations found")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")

	ErrLoadingTranslationsCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrFailedToReadFile             = errors.New("failed to read translation file")
	ErrFailedToParseFile            = errors.New("failed to parse translation file")
)

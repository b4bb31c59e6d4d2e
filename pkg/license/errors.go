package license

import "errors"

var (
	ErrUnknownLicenseClass = errors.New("unknown license class")
	ErrInvalidTable        = errors.New("invalid license table")
	ErrReadTable           = errors.New("failed to read license table")
)

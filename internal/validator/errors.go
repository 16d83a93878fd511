package validator

import "errors"

var (
	ErrEmptyURL         = errors.New("URL is required")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrInvalidShortCode = errors.New("invalid short code")
)

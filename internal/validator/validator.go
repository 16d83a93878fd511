package validator

import (
	"net/url"
	"strings"
	"unicode"
)

// ReservedCodes are paths served by the router itself and therefore never redirect.
var ReservedCodes = map[string]struct{}{
	"links":     {},
	"shorten":   {},
	"style.css": {},
	"metrics":   {},
}

// ValidateURL checks that target is an absolute http(s) URL with a host.
func ValidateURL(target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrEmptyURL
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return ErrInvalidURL
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidURL
	}

	if parsed.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// NormalizeShortCode replaces spaces with underscores.
func NormalizeShortCode(code string) string {
	return strings.ReplaceAll(code, " ", "_")
}

// ValidateShortCode rejects codes that cannot be reached as a single path segment.
func ValidateShortCode(code string) error {
	if code == "" || code == "." || code == ".." {
		return ErrInvalidShortCode
	}

	if _, reserved := ReservedCodes[code]; reserved {
		return ErrInvalidShortCode
	}

	for _, r := range code {
		if unicode.IsControl(r) || strings.ContainsRune("/?#%", r) {
			return ErrInvalidShortCode
		}
	}

	return nil
}

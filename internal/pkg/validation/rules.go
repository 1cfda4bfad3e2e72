package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// HTTP(S) URL pattern, used for linkedin and resume links
	URLPattern = `^https?://[^\s]+$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	URL   *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	URL:   regexp.MustCompile(URLPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidURL reports whether the value looks like an http(s) URL
func IsValidURL(value string) bool {
	return CompiledPatterns.URL.MatchString(value)
}

package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern: local@domain.tld with a 2+ letter TLD
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the address matches the accepted shape.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

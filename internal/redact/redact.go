// Package redact removes credentials, personal data, file paths and SQL from
// strings before they are logged. Error responses never carry raw errors; the
// redacted text only ever reaches the logs.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; earlier rules consume text later ones would also match.
var rules = []rule{
	// Goroutine dumps, from the header to the end of the input.
	{regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`), RedactedStackPlaceholder},

	// userinfo in database, cache, mail and blob-store URLs
	{
		regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|rediss?|smtps?|cloudinary|mysql|mongodb)://[^\s@/]+@`),
		RedactedCredentialPlaceholder,
	},
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pwd|pass)[=:]\s*['"]?[^'"&\s]+`), RedactedCredentialPlaceholder},
	{
		regexp.MustCompile(`(?i)\b(?:api[_-]?key|api[_-]?secret|secret|token)[=:]\s*['"]?[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},

	// Applicant, lead and subscriber addresses.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},

	// Statements echoed by the driver. Upper case only, so prose such as
	// "failed to delete job" survives.
	{regexp.MustCompile(`\b(?:SELECT|INSERT INTO|UPDATE|DELETE FROM)\b[^;]*`), RedactedSQLPlaceholder},

	// Filesystem paths with at least two segments.
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(?:\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

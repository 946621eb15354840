// Package logging keeps credential-shaped values out of the log stream.
// Agents drive the CLI with tokens in their environment, and config dumps
// or error chains can drag those values into log fields; everything bound
// for the on-disk log file passes through the filter in this package.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue replaces any value recognized as a secret.
const RedactedValue = "[REDACTED]"

// secretPatterns match common credential shapes: vendor API keys, GitHub
// tokens, bearer/authorization values, key=value assignments for secret
// field names, and PEM private key headers.
var secretPatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once, read-only
	regexp.MustCompile(`sk-ant-api[a-zA-Z0-9_-]+`),
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?([a-zA-Z0-9_-]{16,})["']?`),
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_-]{20,}`),
	regexp.MustCompile(`(?i)authorization\s*[:=]\s*["']?[a-zA-Z0-9_-]{20,}["']?`),
	regexp.MustCompile(`(?i)(secret|password|credential|passwd|pwd)\s*[:=]\s*["']?[^\s"']{8,}["']?`),
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
	regexp.MustCompile(`(?i)(token|auth)\s*[:=]\s*["']?[a-zA-Z0-9+/=]{32,}["']?`),
}

// sensitiveFieldNames are field names whose values are redacted outright,
// matched case-insensitively as substrings.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // read-only table
	"api_key", "apikey", "api-key",
	"auth_token", "authtoken", "auth-token",
	"access_token", "accesstoken", "access-token",
	"refresh_token", "refreshtoken", "refresh-token",
	"private_key", "privatekey", "private-key",
	"password", "passwd",
	"secret",
	"credential", "credentials",
	"bearer",
	"authorization",
	"github_token",
}

// ContainsSecret reports whether s matches any known credential shape.
func ContainsSecret(s string) bool {
	for _, pattern := range secretPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// Redact replaces every credential-shaped substring of value with
// RedactedValue.
func Redact(value string) string {
	result := value
	for _, pattern := range secretPatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveField reports whether a field name implies a secret value.
func IsSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lower, sensitive) {
			return true
		}
	}
	return false
}

// SafeField returns a value safe to log under the given field name: the
// whole value is dropped for sensitive field names, otherwise any embedded
// credential shapes are redacted.
func SafeField(name, value string) string {
	if IsSensitiveField(name) {
		return RedactedValue
	}
	return Redact(value)
}

// SensitiveDataHook is a zerolog hook that flags events whose message
// carries a credential shape. Hooks cannot rewrite the message itself, so
// the real scrubbing happens in FilteringWriter on the file sink; the flag
// exists so console output can be audited.
type SensitiveDataHook struct{}

// NewSensitiveDataHook returns a hook for zerolog's Hook option.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSecret(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// FilteringWriter scrubs credential shapes from everything written through
// it. The log file writer is wrapped in one so secrets never reach disk
// even when a call site forgets SafeField.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w in a FilteringWriter.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write redacts p before writing it through. It reports the original
// length on success; redaction changes the byte count and a shorter
// return would read as a failed write.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	if _, err = fw.w.Write([]byte(Redact(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the underlying writer when it implements io.Closer.
func (fw *FilteringWriter) Close() error {
	if closer, ok := fw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

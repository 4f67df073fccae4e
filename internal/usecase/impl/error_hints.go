package impl

import "strings"

// errorHint is one (substring, explanation) pair of the diagnostic table.
type errorHint struct {
	pattern string
	hint    string
}

// errorHintTable maps known container failure signatures to operator
// guidance. Evaluated in order; the first match wins.
var errorHintTable = []errorHint{
	{"TOML parse error", "Configuration file (config.toml) has invalid TOML syntax"},
	{"data did not match any variant", "Configuration format mismatch - check TTS/ASR/LLM settings"},
	{"missing field", "Missing required configuration field"},
	{"unknown field", "Unknown configuration field - check spelling"},
	{"Address already in use", "Port 8080 is already in use inside the container"},
	{"Connection refused", "Cannot connect to external service - check API endpoints"},
	{"No such file or directory", "Required file not found"},
	{"Permission denied", "Permission error - check file permissions"},
	{"panicked at", "Application crashed - check configuration"},
}

// extractErrorHint scans a log tail for known failure signatures and
// returns a hint with the matching line appended. Falls back to the first
// line mentioning "error", else returns empty.
func extractErrorHint(logTail string) string {
	for _, entry := range errorHintTable {
		if !strings.Contains(logTail, entry.pattern) {
			continue
		}
		for _, line := range strings.Split(logTail, "\n") {
			if strings.Contains(line, entry.pattern) {
				return entry.hint + ": " + strings.TrimSpace(line)
			}
		}

		return entry.hint
	}

	for _, line := range strings.Split(logTail, "\n") {
		if strings.Contains(strings.ToLower(line), "error") {
			return strings.TrimSpace(line)
		}
	}

	return ""
}

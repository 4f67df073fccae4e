package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractErrorHint_KnownSignatures(t *testing.T) {
	tests := []struct {
		name    string
		logTail string
		want    string
	}{
		{
			name:    "toml syntax",
			logTail: "starting up\nTOML parse error at line 4, column 2\n",
			want:    "Configuration file (config.toml) has invalid TOML syntax: TOML parse error at line 4, column 2",
		},
		{
			name:    "variant mismatch",
			logTail: "Error: data did not match any variant of untagged enum TTSConfig",
			want:    "Configuration format mismatch - check TTS/ASR/LLM settings: Error: data did not match any variant of untagged enum TTSConfig",
		},
		{
			name:    "missing field",
			logTail: "missing field `api_key`",
			want:    "Missing required configuration field: missing field `api_key`",
		},
		{
			name:    "port in use",
			logTail: "Address already in use (os error 98)",
			want:    "Port 8080 is already in use inside the container: Address already in use (os error 98)",
		},
		{
			name:    "panic",
			logTail: "thread 'main' panicked at src/main.rs:10",
			want:    "Application crashed - check configuration: thread 'main' panicked at src/main.rs:10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorHint(tt.logTail))
		})
	}
}

func TestExtractErrorHint_FirstMatchWins(t *testing.T) {
	logTail := "TOML parse error here\nmissing field `model`\n"
	assert.Equal(t,
		"Configuration file (config.toml) has invalid TOML syntax: TOML parse error here",
		extractErrorHint(logTail))
}

func TestExtractErrorHint_FallbackToErrorLine(t *testing.T) {
	logTail := "listening on 8080\nERROR failed to reach upstream\nshutting down\n"
	assert.Equal(t, "ERROR failed to reach upstream", extractErrorHint(logTail))
}

func TestExtractErrorHint_NoMatch(t *testing.T) {
	assert.Empty(t, extractErrorHint("all good\nready\n"))
}

package echokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echofleet/internal/domain/entity"
)

func TestTOMLRenderer_RenderAndParse(t *testing.T) {
	renderer := NewTOMLRenderer()

	cfg := &entity.InstanceConfig{
		Name: "kitchen-helper",
		ASR: map[string]any{
			"provider": "whisper",
			"language": "en",
		},
		LLM: map[string]any{
			"provider":    "openai",
			"model":       "gpt-4o-mini",
			"temperature": 0.7,
		},
		TTS: map[string]any{
			"provider": "edge",
			"voice":    "en-US-AriaNeural",
		},
	}

	data, err := renderer.Render(cfg)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `name = 'kitchen-helper'`)
	assert.Contains(t, content, "[asr]")
	assert.Contains(t, content, "[llm]")
	assert.Contains(t, content, "[tts]")
	assert.Contains(t, content, `model = 'gpt-4o-mini'`)

	parsed, err := renderer.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "kitchen-helper", parsed.Name)
	assert.Equal(t, "whisper", parsed.ASR["provider"])
	assert.Equal(t, "en-US-AriaNeural", parsed.TTS["voice"])
	assert.InDelta(t, 0.7, parsed.LLM["temperature"], 0.001)
}

func TestTOMLRenderer_RenderOmitsEmptySections(t *testing.T) {
	renderer := NewTOMLRenderer()

	data, err := renderer.Render(&entity.InstanceConfig{Name: "bare"})
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, `name = 'bare'`)
	assert.NotContains(t, content, "[asr]")
	assert.NotContains(t, content, "[llm]")
	assert.NotContains(t, content, "[tts]")
}

func TestTOMLRenderer_ParseRejectsMalformedInput(t *testing.T) {
	renderer := NewTOMLRenderer()

	_, err := renderer.Parse([]byte("name = [unterminated"))
	assert.Error(t, err)
}

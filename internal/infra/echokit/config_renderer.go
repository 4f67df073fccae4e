// Package echokit renders the configuration file the assistant container
// reads at startup.
package echokit

import (
	"echofleet/internal/domain/entity"
	"echofleet/internal/domain/service"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// fileConfig mirrors the TOML layout of the container's config file.
type fileConfig struct {
	Name string `toml:"name,omitempty"`

	ASR map[string]any `toml:"asr,omitempty"`
	LLM map[string]any `toml:"llm,omitempty"`
	TTS map[string]any `toml:"tts,omitempty"`
}

// tomlRenderer implements the service.ConfigRenderer interface.
type tomlRenderer struct{}

// NewTOMLRenderer is the constructor for the TOML config renderer.
func NewTOMLRenderer() service.ConfigRenderer {
	return &tomlRenderer{}
}

// Render serializes the configuration to TOML.
func (r *tomlRenderer) Render(cfg *entity.InstanceConfig) ([]byte, error) {
	data, err := toml.Marshal(fileConfig{
		Name: cfg.Name,
		ASR:  cfg.ASR,
		LLM:  cfg.LLM,
		TTS:  cfg.TTS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render instance config")
	}

	return data, nil
}

// Parse reads a previously rendered configuration back.
func (r *tomlRenderer) Parse(data []byte) (*entity.InstanceConfig, error) {
	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse instance config")
	}

	return &entity.InstanceConfig{
		Name: file.Name,
		ASR:  file.ASR,
		LLM:  file.LLM,
		TTS:  file.TTS,
	}, nil
}

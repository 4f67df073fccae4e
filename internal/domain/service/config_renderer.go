package service

import "echofleet/internal/domain/entity"

// ConfigRenderer turns a tenant's assistant configuration into the file
// format the instance container reads at startup.
type ConfigRenderer interface {
	// Render serializes the configuration.
	Render(cfg *entity.InstanceConfig) ([]byte, error)

	// Parse reads a previously rendered configuration back.
	Parse(data []byte) (*entity.InstanceConfig, error)
}

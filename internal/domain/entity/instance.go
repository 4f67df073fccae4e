// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InstanceStatus describes the lifecycle state of a managed instance.
type InstanceStatus string

const (
	// InstanceStatusRunning means the container exists and is running.
	InstanceStatusRunning InstanceStatus = "running"
	// InstanceStatusError means the container runs but HTTP is unreachable.
	InstanceStatusError InstanceStatus = "error"
	// InstanceStatusStopped means the container exists but is not running.
	InstanceStatusStopped InstanceStatus = "stopped"
	// InstanceStatusNotDeployed means no container exists for the instance.
	InstanceStatusNotDeployed InstanceStatus = "not_deployed"
)

// Instance represents one tenant's voice-assistant container.
type Instance struct {
	ID        string     `json:"id"`         // Stable identifier, also the container name suffix.
	Name      string     `json:"name"`       // Human-readable display name.
	Host      string     `json:"host"`       // Host devices use to reach the instance.
	Port      int        `json:"port"`       // Host port the container's service port is mapped to.
	UseTLS    bool       `json:"use_tls"`    // Whether devices should connect over wss/https.
	OwnerID   *uuid.UUID `json:"owner_id"`   // Owning user; nil marks a shared instance.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this instance was registered.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}

// Shared reports whether the instance has no owner and is usable by anyone.
func (i *Instance) Shared() bool {
	return i.OwnerID == nil
}

// WebSocketURL renders the device-facing ws endpoint for the instance.
// Default ports (80 without TLS, 443 with TLS) are omitted from the URL.
func (i *Instance) WebSocketURL() string {
	return i.baseURL("ws", "wss") + "/ws/"
}

// DeviceWebSocketURL renders the upstream ws endpoint for one device,
// keeping the device's raw path identifier and query string byte for byte.
func (i *Instance) DeviceWebSocketURL(rawDeviceID, rawQuery string) string {
	url := i.baseURL("ws", "wss") + "/ws/" + rawDeviceID
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	return url
}

// BaseHTTPURL renders the instance's HTTP endpoint for health checks and
// request pass-through.
func (i *Instance) BaseHTTPURL() string {
	return i.baseURL("http", "https")
}

func (i *Instance) baseURL(plainScheme, tlsScheme string) string {
	scheme := plainScheme
	defaultPort := 80
	if i.UseTLS {
		scheme = tlsScheme
		defaultPort = 443
	}

	if i.Port == defaultPort {
		return fmt.Sprintf("%s://%s", scheme, i.Host)
	}

	return fmt.Sprintf("%s://%s:%d", scheme, i.Host, i.Port)
}

// InstanceConfig is the tenant-editable assistant configuration rendered
// into the container's config file on deploy.
type InstanceConfig struct {
	Name string `json:"name"`

	ASR map[string]any `json:"asr,omitempty"`
	LLM map[string]any `json:"llm,omitempty"`
	TTS map[string]any `json:"tts,omitempty"`
}

// HealthStatus classifies the outcome of a container health probe.
type HealthStatus string

const (
	// HealthStatusHealthy means the container is running and answering HTTP.
	HealthStatusHealthy HealthStatus = "healthy"
	// HealthStatusUnhealthy means HTTP is unreachable or the container
	// stopped; ContainerRunning tells the two apart.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	// HealthStatusNotFound means no container exists for the instance.
	HealthStatusNotFound HealthStatus = "not_found"
)

// HealthCheckResult is the full outcome of a health probe, including the
// configuration hint extracted from the container log when it failed.
type HealthCheckResult struct {
	Status           HealthStatus `json:"status"`
	ContainerRunning bool         `json:"container_running"`
	Detail           string       `json:"detail,omitempty"`
	LogTail          string       `json:"log_tail,omitempty"`
	ErrorHint        string       `json:"error_hint,omitempty"`
}

// DeployResult reports where a freshly deployed instance is reachable and
// how the deploy pipeline left it.
type DeployResult struct {
	ContainerID   string             `json:"container_id"`
	ContainerName string             `json:"container_name"`
	InstanceID    string             `json:"instance_id"`
	Port          int                `json:"port"`
	WSURL         string             `json:"ws_url"`
	Status        InstanceStatus     `json:"status"`
	Health        *HealthCheckResult `json:"health,omitempty"`
}

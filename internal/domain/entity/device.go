package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeviceStatus describes a device's connectivity state as observed by the
// connection router.
type DeviceStatus string

const (
	// DeviceStatusOnline means the device holds an open connection.
	DeviceStatusOnline DeviceStatus = "online"
	// DeviceStatusOffline means the device has disconnected.
	DeviceStatusOffline DeviceStatus = "offline"
	// DeviceStatusUnknown means the device has never connected.
	DeviceStatusUnknown DeviceStatus = "unknown"
)

var deviceIDPattern = regexp.MustCompile(`^[0-9a-f]{12}$`)

// NormalizeDeviceID lowercases a device identifier and strips MAC-style
// separators so the same hardware always maps to one canonical ID.
func NormalizeDeviceID(raw string) string {
	cleaned := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(raw))

	return strings.ToLower(cleaned)
}

// ValidDeviceID reports whether id is a canonical 12-hex-digit identifier.
func ValidDeviceID(id string) bool {
	return deviceIDPattern.MatchString(id)
}

// DefaultDeviceName derives the display name given to devices that register
// without one, from the tail of the canonical device ID. The tail keeps the
// canonical lowercase form.
func DefaultDeviceName(deviceID string) string {
	tail := deviceID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}

	return "EchoKit-" + tail
}

// MACAddress renders the canonical device ID in colon-separated MAC form.
func MACAddress(deviceID string) string {
	if len(deviceID) != 12 {
		return deviceID
	}

	parts := make([]string, 0, 6)
	for i := 0; i < 12; i += 2 {
		parts = append(parts, deviceID[i:i+2])
	}

	return strings.Join(parts, ":")
}

// Device represents a registered hardware device.
type Device struct {
	DeviceID        string       `json:"device_id"`         // Canonical 12-hex-digit identifier.
	Name            string       `json:"name"`              // Display name, defaulted from the ID tail.
	MACAddress      string       `json:"mac_address"`       // Colon-separated MAC form of the ID.
	OwnerID         uuid.UUID    `json:"owner_id"`          // The user who activated the device.
	BoundInstanceID *string      `json:"bound_instance_id"` // Instance the device is routed to, if any.
	Status          DeviceStatus `json:"status"`            // Last observed connectivity state.
	FirmwareVersion string       `json:"firmware_version"`  // Self-reported firmware version.
	CreatedAt       time.Time    `json:"created_at"`        // Timestamp of first registration.
	LastConnectedAt *time.Time   `json:"last_connected_at"` // Timestamp of the most recent connection.
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDeviceID(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"A1:B2:C3:D4:E5:F6", "a1b2c3d4e5f6"},
		{"a1-b2-c3-d4-e5-f6", "a1b2c3d4e5f6"},
		{"  A1B2C3D4E5F6  ", "a1b2c3d4e5f6"},
		{"a1b2c3d4e5f6", "a1b2c3d4e5f6"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDeviceID(tt.raw))
	}
}

func TestValidDeviceID(t *testing.T) {
	assert.True(t, ValidDeviceID("a1b2c3d4e5f6"))
	assert.False(t, ValidDeviceID("A1B2C3D4E5F6"), "uppercase is not canonical")
	assert.False(t, ValidDeviceID("a1b2c3d4e5"), "too short")
	assert.False(t, ValidDeviceID("a1b2c3d4e5f6a7"), "too long")
	assert.False(t, ValidDeviceID("g1b2c3d4e5f6"), "not hex")
	assert.False(t, ValidDeviceID(""))
}

func TestDefaultDeviceName(t *testing.T) {
	assert.Equal(t, "EchoKit-d4e5f6", DefaultDeviceName("a1b2c3d4e5f6"))
	assert.Equal(t, "EchoKit-abc", DefaultDeviceName("abc"))
}

func TestMACAddress(t *testing.T) {
	assert.Equal(t, "a1:b2:c3:d4:e5:f6", MACAddress("a1b2c3d4e5f6"))
	assert.Equal(t, "short", MACAddress("short"))
}

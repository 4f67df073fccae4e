package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstanceWebSocketURL(t *testing.T) {
	tests := []struct {
		name     string
		instance Instance
		want     string
	}{
		{
			name:     "plain with explicit port",
			instance: Instance{Host: "localhost", Port: 8080},
			want:     "ws://localhost:8080/ws/",
		},
		{
			name:     "default port omitted",
			instance: Instance{Host: "fleet.example.com", Port: 80},
			want:     "ws://fleet.example.com/ws/",
		},
		{
			name:     "tls default port omitted",
			instance: Instance{Host: "fleet.example.com", Port: 443, UseTLS: true},
			want:     "wss://fleet.example.com/ws/",
		},
		{
			name:     "tls with explicit port",
			instance: Instance{Host: "fleet.example.com", Port: 8443, UseTLS: true},
			want:     "wss://fleet.example.com:8443/ws/",
		},
		{
			name:     "port 443 without tls is not default",
			instance: Instance{Host: "fleet.example.com", Port: 443},
			want:     "ws://fleet.example.com:443/ws/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.instance.WebSocketURL())
		})
	}
}

func TestInstanceDeviceWebSocketURL(t *testing.T) {
	instance := Instance{Host: "localhost", Port: 8081}

	assert.Equal(t,
		"ws://localhost:8081/ws/A1:B2:C3:D4:E5:F6?token=x",
		instance.DeviceWebSocketURL("A1:B2:C3:D4:E5:F6", "token=x"),
		"raw identifier and query must pass through unchanged")

	assert.Equal(t,
		"ws://localhost:8081/ws/a1b2c3d4e5f6",
		instance.DeviceWebSocketURL("a1b2c3d4e5f6", ""))
}

func TestInstanceBaseHTTPURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", (&Instance{Host: "localhost", Port: 8080}).BaseHTTPURL())
	assert.Equal(t, "https://fleet.example.com", (&Instance{Host: "fleet.example.com", Port: 443, UseTLS: true}).BaseHTTPURL())
}

func TestInstanceShared(t *testing.T) {
	assert.True(t, (&Instance{}).Shared())
}

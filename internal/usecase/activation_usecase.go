package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ActivationGrant is the response to a device's activation request.
type ActivationGrant struct {
	Code      string `json:"code"`
	Challenge string `json:"challenge"`
	ExpiresIn int    `json:"expiresIn"` // Seconds until the code expires.
}

// VerifyResult reports the outcome of a device's verify poll.
type VerifyResult struct {
	// Pending means no user has confirmed the code yet; the device
	// should poll again after RetryAfterMs.
	Pending      bool
	RetryAfterMs int

	// Set once the binding is durable.
	UserID     uuid.UUID
	DeviceName string
	ProxyURL   string
}

// ActivationUsecase drives the device activation state machine.
type ActivationUsecase interface {
	// Request mints (or returns the still-live) code and challenge for a
	// device. Duplicate requests within the TTL collapse onto the same
	// grant.
	Request(ctx context.Context, deviceID string) (*ActivationGrant, error)

	// Confirm claims a code for a user. Confirmation is single-use and
	// never extends the activation window.
	Confirm(ctx context.Context, userID uuid.UUID, code, deviceName string) (deviceID string, err error)

	// Verify is the device's challenge-bound poll. Once the code has been
	// confirmed it creates the durable device registration and consumes
	// the activation record.
	Verify(ctx context.Context, deviceID, challenge, firmwareVersion string) (*VerifyResult, error)

	// QRCode renders the confirmation URL for a device's live code as a
	// PNG, for pairing without typing the code.
	QRCode(ctx context.Context, deviceID, confirmBaseURL string) ([]byte, error)
}

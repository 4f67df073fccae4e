package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var activationCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidActivationCode reports whether code is a 6-decimal-digit code.
func ValidActivationCode(code string) bool {
	return activationCodePattern.MatchString(code)
}

// NewActivationCode draws a uniformly random 6-digit code, zero padded.
func NewActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewChallenge draws a 256-bit random challenge encoded as lowercase hex.
func NewChallenge() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// Activation is a pending device-activation record. It lives in the
// activation store under both the code and the device ID, bounded by a TTL.
//
// The record starts out unconfirmed. A user confirming the code fills in
// ConfirmedBy; the device verifying its challenge afterwards consumes the
// record and produces the permanent device registration.
type Activation struct {
	DeviceID    string     `json:"device_id"`
	Challenge   string     `json:"challenge"`
	ConfirmedBy *uuid.UUID `json:"confirmed_by,omitempty"`
	DeviceName  string     `json:"device_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Confirmed reports whether a user has already claimed this activation.
func (a *Activation) Confirmed() bool {
	return a.ConfirmedBy != nil
}

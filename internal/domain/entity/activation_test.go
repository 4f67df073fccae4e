package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidActivationCode(t *testing.T) {
	assert.True(t, ValidActivationCode("000000"))
	assert.True(t, ValidActivationCode("123456"))
	assert.False(t, ValidActivationCode("12345"))
	assert.False(t, ValidActivationCode("1234567"))
	assert.False(t, ValidActivationCode("12a456"))
	assert.False(t, ValidActivationCode(""))
}

func TestNewActivationCode(t *testing.T) {
	for i := 0; i < 32; i++ {
		code, err := NewActivationCode()
		require.NoError(t, err)
		assert.True(t, ValidActivationCode(code), "minted code %q must be valid", code)
	}
}

func TestNewChallenge(t *testing.T) {
	a, err := NewChallenge()
	require.NoError(t, err)
	b, err := NewChallenge()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Regexp(t, `^[0-9a-f]{64}$`, a)
	assert.NotEqual(t, a, b)
}

func TestActivationConfirmed(t *testing.T) {
	activation := &Activation{DeviceID: "a1b2c3d4e5f6"}
	assert.False(t, activation.Confirmed())

	userID := uuid.New()
	activation.ConfirmedBy = &userID
	assert.True(t, activation.Confirmed())
}

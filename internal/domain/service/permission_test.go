package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name          string
		resourceOwner *uuid.UUID
		caller        uuid.UUID
		allowShared   bool
		want          bool
	}{
		{"owner may read own resource", &owner, owner, true, true},
		{"owner may mutate own resource", &owner, owner, false, true},
		{"stranger never reaches a private resource", &owner, stranger, true, false},
		{"shared resource readable by anyone", nil, stranger, true, true},
		{"shared resource never mutable", nil, owner, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.resourceOwner, tt.caller, tt.allowShared))
		})
	}
}

package activation

import (
	"context"
	"encoding/json"
	"time"

	"echofleet/internal/domain/entity"
	"echofleet/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	codeKeyPrefix   = "activation:"
	deviceKeyPrefix = "activation:device:"
)

// store implements the repository.ActivationStore interface on Redis.
// The record JSON lives under the code key; the device key maps the
// device ID back to its code. Both carry the same TTL so they expire
// together.
type store struct {
	client *redis.Client
}

// NewStore is the constructor for the Redis activation store.
func NewStore(client *redis.Client) repository.ActivationStore {
	return &store{
		client: client,
	}
}

func codeKey(code string) string {
	return codeKeyPrefix + code
}

func deviceKey(deviceID string) string {
	return deviceKeyPrefix + deviceID
}

// PutActivation stores the record under both keys with the given TTL.
func (s *store) PutActivation(ctx context.Context, code string, activation *entity.Activation, ttl time.Duration) error {
	payload, err := json.Marshal(activation)
	if err != nil {
		return errors.Wrap(err, "failed to marshal activation")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(code), payload, ttl)
	pipe.Set(ctx, deviceKey(activation.DeviceID), code, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store activation")
	}

	return nil
}

// GetByCode retrieves the record for a code.
func (s *store) GetByCode(ctx context.Context, code string) (*entity.Activation, error) {
	payload, err := s.client.Get(ctx, codeKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to load activation by code")
	}

	var record entity.Activation
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal activation")
	}

	return &record, nil
}

// GetByDevice retrieves the record for a device ID.
func (s *store) GetByDevice(ctx context.Context, deviceID string) (*entity.Activation, error) {
	code, err := s.FindCodeByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return s.GetByCode(ctx, code)
}

// UpdateActivation rewrites the record, preserving the remaining TTL.
func (s *store) UpdateActivation(ctx context.Context, code string, activation *entity.Activation) error {
	payload, err := json.Marshal(activation)
	if err != nil {
		return errors.Wrap(err, "failed to marshal activation")
	}

	if err := s.client.Set(ctx, codeKey(code), payload, redis.KeepTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to update activation")
	}

	return nil
}

// FindCodeByDevice returns the code currently mapped to a device ID.
func (s *store) FindCodeByDevice(ctx context.Context, deviceID string) (string, error) {
	code, err := s.client.Get(ctx, deviceKey(deviceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrActivationNotFound
		}

		return "", errors.Wrap(err, "failed to load activation code by device")
	}

	return code, nil
}

// DeleteActivation removes the record under both keys.
func (s *store) DeleteActivation(ctx context.Context, code, deviceID string) error {
	if err := s.client.Del(ctx, codeKey(code), deviceKey(deviceID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete activation")
	}

	return nil
}

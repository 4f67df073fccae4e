package impl

import (
	"context"
	"log/slog"
	"time"

	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/usecase"

	"github.com/pkg/errors"
)

type routerService struct {
	deviceRepo   repository.DeviceRepository
	instanceRepo repository.InstanceRepository
	logger       *slog.Logger
}

// NewRouterService creates the device connection router.
func NewRouterService(
	deviceRepo repository.DeviceRepository,
	instanceRepo repository.InstanceRepository,
	logger *slog.Logger,
) usecase.RouterUsecase {
	return &routerService{
		deviceRepo:   deviceRepo,
		instanceRepo: instanceRepo,
		logger:       logger,
	}
}

// Resolve authorizes an inbound device connection and returns the upstream
// endpoint to dial. The raw path identifier and query string are carried
// into the upstream URL unchanged so the instance parses exactly what the
// device sent.
func (s *routerService) Resolve(ctx context.Context, rawDeviceID, rawQuery string) (*usecase.RouteDecision, error) {
	deviceID := entity.NormalizeDeviceID(rawDeviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.ErrInvalidDeviceID
	}

	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.BoundInstanceID == nil {
		s.logger.WarnContext(ctx, "dropping unbound device connection",
			slog.String("deviceId", deviceID))

		return nil, domainerrors.ErrNotFound.WithMessage("device is not bound to an instance")
	}

	instance, err := s.instanceRepo.FindInstanceByID(ctx, *device.BoundInstanceID)
	if err != nil {
		if errors.Is(err, repository.ErrInstanceNotFound) {
			return nil, domainerrors.ErrInstanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find bound instance")
	}

	// A device may reach its owner's instance or a shared one, never
	// another user's private instance.
	if !service.Allowed(instance.OwnerID, device.OwnerID, true) {
		s.logger.WarnContext(ctx, "device not allowed to reach bound instance",
			slog.String("deviceId", deviceID),
			slog.String("instanceId", instance.ID))

		return nil, domainerrors.ErrForbidden
	}

	return &usecase.RouteDecision{
		DeviceID:    deviceID,
		UpstreamURL: instance.DeviceWebSocketURL(rawDeviceID, rawQuery),
	}, nil
}

// MarkOnline records the device as connected.
func (s *routerService) MarkOnline(ctx context.Context, deviceID string) error {
	now := time.Now()
	if err := s.deviceRepo.UpdateStatus(ctx, deviceID, entity.DeviceStatusOnline, &now); err != nil {
		return errors.Wrap(err, "failed to mark device online")
	}

	return nil
}

// MarkOffline records the device as disconnected.
func (s *routerService) MarkOffline(ctx context.Context, deviceID string) error {
	if err := s.deviceRepo.UpdateStatus(ctx, deviceID, entity.DeviceStatusOffline, nil); err != nil {
		return errors.Wrap(err, "failed to mark device offline")
	}

	return nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"echofleet/config"
	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// verifyRetryAfterMs is the poll hint handed to devices waiting for a
// user to confirm their code.
const verifyRetryAfterMs = 5000

type activationService struct {
	store      repository.ActivationStore
	deviceRepo repository.DeviceRepository
	qrcode     service.QRCodeService
	cfg        *config.ActivationConfig
	logger     *slog.Logger
}

// NewActivationService creates the activation state machine.
func NewActivationService(
	store repository.ActivationStore,
	deviceRepo repository.DeviceRepository,
	qrcode service.QRCodeService,
	cfg *config.ActivationConfig,
	logger *slog.Logger,
) usecase.ActivationUsecase {
	return &activationService{
		store:      store,
		deviceRepo: deviceRepo,
		qrcode:     qrcode,
		cfg:        cfg,
		logger:     logger,
	}
}

// Request mints (or returns the still-live) code and challenge for a device.
func (s *activationService) Request(ctx context.Context, deviceID string) (*usecase.ActivationGrant, error) {
	deviceID = entity.NormalizeDeviceID(deviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.ErrInvalidDeviceID
	}

	// A live record collapses duplicate requests onto the same grant.
	if code, err := s.store.FindCodeByDevice(ctx, deviceID); err == nil {
		record, err := s.store.GetByCode(ctx, code)
		if err == nil {
			return s.grantFor(code, record), nil
		}
		if !errors.Is(err, repository.ErrActivationNotFound) {
			return nil, errors.Wrap(err, "failed to load existing activation")
		}
	} else if !errors.Is(err, repository.ErrActivationNotFound) {
		return nil, errors.Wrap(err, "failed to look up existing activation")
	}

	code, err := entity.NewActivationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint activation code")
	}
	challenge, err := entity.NewChallenge()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint challenge")
	}

	record := &entity.Activation{
		DeviceID:  deviceID,
		Challenge: challenge,
		CreatedAt: time.Now(),
	}

	if err := s.store.PutActivation(ctx, code, record, s.cfg.TTL); err != nil {
		return nil, errors.Wrap(err, "failed to store activation")
	}

	s.logger.InfoContext(ctx, "activation requested",
		slog.String("deviceId", deviceID),
		slog.String("code", code),
	)

	return s.grantFor(code, record), nil
}

// Confirm claims a code for a user. Confirmation is single-use and keeps
// the record's remaining TTL, so a confirmed-but-never-verified code still
// expires on schedule.
func (s *activationService) Confirm(ctx context.Context, userID uuid.UUID, code, deviceName string) (string, error) {
	if !entity.ValidActivationCode(code) {
		return "", domainerrors.ErrInvalidCodeFormat
	}

	record, err := s.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return "", domainerrors.ErrCodeNotFound
		}

		return "", errors.Wrap(err, "failed to load activation")
	}

	if record.Confirmed() {
		return "", domainerrors.ErrAlreadyConfirmed
	}

	// A device durably bound to someone else cannot be claimed again.
	existing, err := s.deviceRepo.FindDeviceByID(ctx, record.DeviceID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return "", errors.Wrap(err, "failed to check device binding")
	}
	if existing != nil && existing.OwnerID != userID {
		return "", domainerrors.ErrDeviceAlreadyBound
	}

	record.ConfirmedBy = &userID
	record.DeviceName = deviceName

	if err := s.store.UpdateActivation(ctx, code, record); err != nil {
		return "", errors.Wrap(err, "failed to confirm activation")
	}

	s.logger.InfoContext(ctx, "activation confirmed",
		slog.String("deviceId", record.DeviceID),
		slog.String("userId", userID.String()),
	)

	return record.DeviceID, nil
}

// Verify is the device's challenge-bound poll. A confirmed record produces
// the durable registration and is consumed.
func (s *activationService) Verify(ctx context.Context, deviceID, challenge, firmwareVersion string) (*usecase.VerifyResult, error) {
	deviceID = entity.NormalizeDeviceID(deviceID)

	record, err := s.store.GetByDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return nil, domainerrors.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to load activation")
	}

	// The challenge ties the verify call to this activation session.
	if record.Challenge != challenge {
		return nil, domainerrors.ErrInvalidChallenge
	}

	if !record.Confirmed() {
		return &usecase.VerifyResult{
			Pending:      true,
			RetryAfterMs: verifyRetryAfterMs,
		}, nil
	}

	deviceName := record.DeviceName
	if deviceName == "" {
		deviceName = entity.DefaultDeviceName(deviceID)
	}

	device := &entity.Device{
		DeviceID:        deviceID,
		Name:            deviceName,
		MACAddress:      entity.MACAddress(deviceID),
		OwnerID:         *record.ConfirmedBy,
		Status:          entity.DeviceStatusUnknown,
		FirmwareVersion: firmwareVersion,
		CreatedAt:       time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		// Only an existing registration is tolerated here; other
		// persistence failures must surface.
		if !errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(err, "failed to register device")
		}
		if firmwareVersion != "" {
			if err := s.deviceRepo.UpdateFirmwareVersion(ctx, deviceID, firmwareVersion); err != nil {
				return nil, errors.Wrap(err, "failed to update firmware version")
			}
		}
	}

	code, err := s.store.FindCodeByDevice(ctx, deviceID)
	if err == nil {
		if err := s.store.DeleteActivation(ctx, code, deviceID); err != nil {
			s.logger.WarnContext(ctx, "failed to delete consumed activation",
				slog.String("deviceId", deviceID), slog.String("error", err.Error()))
		}
	}

	s.logger.InfoContext(ctx, "device bound",
		slog.String("deviceId", deviceID),
		slog.String("userId", record.ConfirmedBy.String()),
	)

	return &usecase.VerifyResult{
		UserID:     *record.ConfirmedBy,
		DeviceName: deviceName,
		ProxyURL:   s.cfg.ProxyWSURL,
	}, nil
}

// QRCode renders the confirmation URL for a device's live code as a PNG.
func (s *activationService) QRCode(ctx context.Context, deviceID, confirmBaseURL string) ([]byte, error) {
	deviceID = entity.NormalizeDeviceID(deviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.ErrInvalidDeviceID
	}

	code, err := s.store.FindCodeByDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrActivationNotFound) {
			return nil, domainerrors.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to look up activation")
	}

	return s.qrcode.GenerateActivationQR(confirmBaseURL + "?code=" + code)
}

func (s *activationService) grantFor(code string, record *entity.Activation) *usecase.ActivationGrant {
	return &usecase.ActivationGrant{
		Code:      code,
		Challenge: record.Challenge,
		ExpiresIn: int(s.cfg.TTL.Seconds()),
	}
}

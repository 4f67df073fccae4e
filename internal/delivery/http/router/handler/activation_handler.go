package handler

import (
	"net/http"

	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/delivery/http/response"
	"echofleet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ActivationHandler serves the device activation endpoints.
type ActivationHandler struct {
	activationUsecase usecase.ActivationUsecase
}

// NewActivationHandler is the constructor for ActivationHandler.
func NewActivationHandler(activationUsecase usecase.ActivationUsecase) *ActivationHandler {
	return &ActivationHandler{activationUsecase: activationUsecase}
}

type confirmRequest struct {
	Code       string `json:"code" validate:"required"`
	DeviceName string `json:"deviceName"`
}

type verifyRequest struct {
	DeviceID        string `json:"deviceId" validate:"required"`
	Challenge       string `json:"challenge" validate:"required"`
	FirmwareVersion string `json:"firmwareVersion"`
}

// Request handles GET /api/activation?device_id=<12hex>.
func (h *ActivationHandler) Request(c echo.Context) error {
	grant, err := h.activationUsecase.Request(c.Request().Context(), c.QueryParam("device_id"))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, grant)
}

// Confirm handles POST /api/activation/confirm. The caller must be
// authenticated; the code becomes theirs.
func (h *ActivationHandler) Confirm(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "invalid_code_format", "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deviceID, err := h.activationUsecase.Confirm(c.Request().Context(), userID, req.Code, req.DeviceName)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{
		"status":   "confirmed",
		"deviceId": deviceID,
	})
}

// Verify handles POST /api/activation/verify, the device's poll.
func (h *ActivationHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "invalid_device_id", "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.activationUsecase.Verify(c.Request().Context(), req.DeviceID, req.Challenge, req.FirmwareVersion)
	if err != nil {
		return err
	}

	if result.Pending {
		return response.JSON(c, http.StatusAccepted, map[string]any{
			"status":       "pending",
			"retryAfterMs": result.RetryAfterMs,
		})
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"status":     "bound",
		"userId":     result.UserID,
		"deviceName": result.DeviceName,
		"proxyUrl":   result.ProxyURL,
	})
}

// QRCode handles GET /api/activation/qrcode?device_id=<12hex>, rendering
// the confirmation link for the device's live code as a PNG.
func (h *ActivationHandler) QRCode(c echo.Context) error {
	confirmBaseURL := c.Scheme() + "://" + c.Request().Host + "/activate"

	png, err := h.activationUsecase.QRCode(c.Request().Context(), c.QueryParam("device_id"), confirmBaseURL)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

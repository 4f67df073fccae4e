package handler

import (
	"net/http"

	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/delivery/http/response"
	"echofleet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler serves the device registry endpoints.
type DeviceHandler struct {
	deviceUsecase usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(deviceUsecase usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{deviceUsecase: deviceUsecase}
}

type registerDeviceRequest struct {
	DeviceID string `json:"deviceId" validate:"required"`
	Name     string `json:"name"`
}

type bindDeviceRequest struct {
	InstanceID string `json:"instanceId" validate:"required"`
}

type reportDeviceRequest struct {
	FirmwareVersion string `json:"firmwareVersion"`
}

// Register handles POST /api/devices.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "validation_failed", "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.deviceUsecase.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		DeviceID: req.DeviceID,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, device)
}

// List handles GET /api/devices.
func (h *DeviceHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	devices, err := h.deviceUsecase.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, devices)
}

// Get handles GET /api/devices/:id.
func (h *DeviceHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	device, err := h.deviceUsecase.GetDevice(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, device)
}

// Delete handles DELETE /api/devices/:id.
func (h *DeviceHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	if err := h.deviceUsecase.DeleteDevice(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "deleted"})
}

// Bind handles POST /api/devices/:id/bind.
func (h *DeviceHandler) Bind(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	var req bindDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "validation_failed", "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.deviceUsecase.BindDevice(c.Request().Context(), userID, c.Param("id"), req.InstanceID); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "bound"})
}

// Unbind handles POST /api/devices/:id/unbind.
func (h *DeviceHandler) Unbind(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	if err := h.deviceUsecase.UnbindDevice(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "unbound"})
}

// Report handles POST /api/devices/:id/report. Devices call this without a
// user token, so the endpoint is unauthenticated.
func (h *DeviceHandler) Report(c echo.Context) error {
	var req reportDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "validation_failed", "malformed request body")
	}

	if err := h.deviceUsecase.ReportDevice(c.Request().Context(), c.Param("id"), req.FirmwareVersion); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "reported"})
}

package handler

import (
	"net/http"
	"strconv"

	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/delivery/http/response"
	"echofleet/internal/domain/entity"
	"echofleet/internal/usecase"

	"github.com/labstack/echo/v4"
)

// InstanceHandler serves the container lifecycle endpoints.
type InstanceHandler struct {
	orchestrator usecase.OrchestratorUsecase
}

// NewInstanceHandler is the constructor for InstanceHandler.
func NewInstanceHandler(orchestrator usecase.OrchestratorUsecase) *InstanceHandler {
	return &InstanceHandler{orchestrator: orchestrator}
}

type deployRequest struct {
	Config *entity.InstanceConfig `json:"config" validate:"required"`
	Port   int                    `json:"port"`
}

type deployResponse struct {
	ContainerID   string                    `json:"containerId"`
	ContainerName string                    `json:"containerName"`
	Port          int                       `json:"port"`
	WSURL         string                    `json:"wsUrl"`
	Status        entity.InstanceStatus     `json:"status"`
	Health        *entity.HealthCheckResult `json:"health"`
}

// Deploy handles POST /api/deploy.
func (h *InstanceHandler) Deploy(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	var req deployRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrorWith(c, http.StatusBadRequest, "validation_failed", "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.orchestrator.Deploy(c.Request().Context(), &usecase.DeployRequest{
		Config:        req.Config,
		RequestedPort: req.Port,
		Owner:         &userID,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, deployResponse{
		ContainerID:   result.ContainerID,
		ContainerName: result.ContainerName,
		Port:          result.Port,
		WSURL:         result.WSURL,
		Status:        result.Status,
		Health:        result.Health,
	})
}

// List handles GET /api/containers.
func (h *InstanceHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	instances, err := h.orchestrator.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, instances)
}

// Get handles GET /api/containers/:id; live health is computed.
func (h *InstanceHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	detail, err := h.orchestrator.GetForUser(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, detail)
}

// Start handles POST /api/containers/:id/start.
func (h *InstanceHandler) Start(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	if err := h.orchestrator.StartForUser(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "started"})
}

// Stop handles POST /api/containers/:id/stop.
func (h *InstanceHandler) Stop(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	if err := h.orchestrator.StopForUser(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "stopped"})
}

// Delete handles DELETE /api/containers/:id.
func (h *InstanceHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	if err := h.orchestrator.DeleteForUser(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"status": "deleted"})
}

// Logs handles GET /api/containers/:id/logs?tail=<n>.
func (h *InstanceHandler) Logs(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	tail, _ := strconv.Atoi(c.QueryParam("tail"))

	logTail, err := h.orchestrator.LogsForUser(c.Request().Context(), userID, c.Param("id"), tail)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"logs": logTail})
}

// Health handles GET /api/containers/:id/health.
func (h *InstanceHandler) Health(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.ErrorWith(c, http.StatusUnauthorized, "invalid_credentials", "authentication required")
	}

	// Shared-read semantics: resolving through GetForUser applies them.
	detail, err := h.orchestrator.GetForUser(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, detail.Health)
}

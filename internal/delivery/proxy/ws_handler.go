package proxy

import (
	"context"
	"log/slog"
	"net/http"

	"echofleet/internal/delivery/http/response"
	"echofleet/internal/infra/wsproxy"
	"echofleet/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler accepts device WebSocket connections and bridges them to the
// instance the device is bound to.
type WSHandler struct {
	routerUsecase usecase.RouterUsecase
	logger        *slog.Logger
	upgrader      websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler.
func NewWSHandler(routerUsecase usecase.RouterUsecase, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		routerUsecase: routerUsecase,
		logger:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle serves GET /ws/:device_id. Routing failures are reported as plain
// HTTP errors before the handshake is upgraded.
func (h *WSHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()
	rawDeviceID := c.Param("device_id")

	decision, err := h.routerUsecase.Resolve(ctx, rawDeviceID, c.Request().URL.RawQuery)
	if err != nil {
		return err
	}

	upstream, resp, err := websocket.DefaultDialer.DialContext(ctx, decision.UpstreamURL, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		h.logger.Warn("upstream dial failed",
			slog.String("deviceId", decision.DeviceID),
			slog.String("upstream", decision.UpstreamURL),
			slog.String("error", err.Error()))

		return response.ErrorWith(c, http.StatusBadGateway, "bad_gateway", "instance is unreachable")
	}
	if resp != nil {
		resp.Body.Close()
	}

	device, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		upstream.Close()

		// Upgrade already wrote the handshake failure to the client.
		return nil
	}

	if err := h.routerUsecase.MarkOnline(ctx, decision.DeviceID); err != nil {
		h.logger.Warn("failed to mark device online",
			slog.String("deviceId", decision.DeviceID),
			slog.String("error", err.Error()))
	}
	defer func() {
		// The request context is gone once the relay ends, so presence is
		// cleared on a detached context.
		offCtx := context.WithoutCancel(ctx)
		if err := h.routerUsecase.MarkOffline(offCtx, decision.DeviceID); err != nil {
			h.logger.Warn("failed to mark device offline",
				slog.String("deviceId", decision.DeviceID),
				slog.String("error", err.Error()))
		}
	}()

	h.logger.Info("device connected",
		slog.String("deviceId", decision.DeviceID),
		slog.String("upstream", decision.UpstreamURL))

	forwarder := wsproxy.NewForwarder(device, upstream, h.logger)
	if err := forwarder.Run(ctx); err != nil {
		h.logger.Warn("relay ended with error",
			slog.String("deviceId", decision.DeviceID),
			slog.String("error", err.Error()))
	} else {
		h.logger.Info("device disconnected", slog.String("deviceId", decision.DeviceID))
	}

	return nil
}

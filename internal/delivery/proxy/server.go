// Package proxy is the device-facing edge server. It upgrades device
// WebSocket connections and bridges them to the bound instance, and relays
// everything else to the backend API.
package proxy

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"echofleet/config"
	"echofleet/internal/delivery"
	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/domain/lifecycle"
	"echofleet/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

type ProxyParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	DB              *gorm.DB
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterUsecase   usecase.RouterUsecase
}

type proxyServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params ProxyParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	wsHandler := NewWSHandler(params.RouterUsecase, params.Logger)
	passthrough := NewPassthroughHandler(
		params.Config.Proxy.BackendURL,
		&http.Client{Timeout: params.Config.Proxy.RequestTimeout},
		params.Logger,
	)

	// The edge answers its own liveness probe; everything else under the
	// catch-all is the backend's business.
	echoServer.GET("/health", healthHandler(params.DB))
	echoServer.GET("/ws/:device_id", wsHandler.Handle)
	echoServer.Any("/*", passthrough.Handle)

	delivery := &proxyServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func healthHandler(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		connected := false
		if sqlDB, err := db.DB(); err == nil {
			pingCtx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
			defer cancel()
			connected = sqlDB.PingContext(pingCtx) == nil
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":             "ok",
			"database_connected": connected,
		})
	}
}

func (s *proxyServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Proxy.Port))
	s.logger.Info("Starting proxy server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve proxy")
	}

	return nil
}

func (s *proxyServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down proxy server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

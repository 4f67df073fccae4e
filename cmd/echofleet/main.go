package main

import (
	"context"
	"log/slog"
	"os"

	"echofleet/config"
	"echofleet/internal/delivery"
	"echofleet/internal/delivery/http"
	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/delivery/http/router/handler"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/infra/activation"
	"echofleet/internal/infra/auth"
	"echofleet/internal/infra/docker"
	"echofleet/internal/infra/echokit"
	logs "echofleet/internal/infra/log"
	"echofleet/internal/infra/persistence/postgres"
	"echofleet/internal/infra/qrcode"
	"echofleet/internal/usecase"
	"echofleet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		activation.NewRedisClient,
		docker.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewInstanceRepository,
			postgres.NewDeviceRepository,
			activation.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			docker.NewEngine,
			docker.NewHTTPProber,
			echokit.NewTOMLRenderer,
			newQRCodeService,
			newDockerConfig,
			newActivationConfig,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newDockerConfig(cfg *config.Config) *config.DockerConfig {
	return cfg.Docker
}

func newActivationConfig(cfg *config.Config) *config.ActivationConfig {
	return cfg.Activation
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.DefaultOrchestratorTimings,
			newPortAllocator,
			impl.NewOrchestratorService,
			impl.NewActivationService,
			impl.NewDeviceService,
			impl.NewRouterService,
		),
	)
}

func newPortAllocator(cfg *config.Config, instanceRepo repository.InstanceRepository, engine service.ContainerEngine) usecase.PortAllocator {
	return impl.NewPortAllocator(cfg.Docker.PortRangeStart, cfg.Docker.PortRangeEnd, instanceRepo, engine)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewInstanceHandler,
			handler.NewDeviceHandler,
			handler.NewActivationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

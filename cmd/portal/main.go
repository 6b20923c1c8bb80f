package main

import (
	"context"
	"log/slog"
	"os"

	"pinesvet/config"
	"pinesvet/internal/delivery"
	"pinesvet/internal/delivery/http"
	httpmiddleware "pinesvet/internal/delivery/http/middleware"
	"pinesvet/internal/delivery/http/router/handler"
	deliverymiddleware "pinesvet/internal/delivery/middleware"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/infra/auth"
	"pinesvet/internal/infra/auth/google"
	logs "pinesvet/internal/infra/log"
	"pinesvet/internal/infra/persistence/postgres"
	"pinesvet/internal/infra/pubsub"
	"pinesvet/internal/infra/qrcode"
	"pinesvet/internal/infra/redis"
	"pinesvet/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		redis.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewPetRepository,
			postgres.NewAppointmentRepository,
			postgres.NewTimeSlotRepository,
			postgres.NewReservationRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewNotificationRepository,
			postgres.NewPlanChangeRepository,
			postgres.NewNewsletterRepository,
			postgres.NewAdminRepository,
			postgres.NewOverlayRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasherFromConfig,
			auth.NewJWTService,
			google.NewAuthService,
			redis.NewAdminSessionStore,
			pubsub.NewEventPublisher,
			newQRCodeService,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPetService,
			impl.NewBookingService,
			impl.NewShopService,
			impl.NewPlanService,
			impl.NewFeedService,
			impl.NewNewsletterService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewAdminMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPetHandler,
			handler.NewBookingHandler,
			handler.NewShopHandler,
			handler.NewPlanHandler,
			handler.NewNotificationHandler,
			handler.NewNewsletterHandler,
			handler.NewAdminHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

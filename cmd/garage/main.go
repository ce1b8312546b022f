package main

import (
	"context"
	"log/slog"
	"os"

	"garage/config"
	"garage/internal/delivery"
	"garage/internal/delivery/http"
	"garage/internal/delivery/http/middleware"
	"garage/internal/delivery/http/router/handler"
	"garage/internal/infra/auth"
	"garage/internal/infra/channel"
	logs "garage/internal/infra/log"
	"garage/internal/infra/persistence/postgres"
	"garage/internal/infra/pubsub"
	"garage/internal/infra/qrcode"
	"garage/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		channel.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTicketRepository,
			postgres.NewNotificationRepository,
			postgres.NewCustomerProfileRepository,
			postgres.NewPartRepository,
			postgres.NewVehicleRepository,
			postgres.NewAuditLogRepository,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPreferenceService,
			impl.NewDispatchService,
			impl.NewRescheduleService,
			impl.NewWorkorderService,
			impl.NewAuthService,
		),
	)
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
			handler.NewAuthHandler,
			handler.NewPreferenceHandler,
			handler.NewWorkorderHandler,
			handler.NewNotificationHandler,
			handler.NewTicketHandler,
			handler.NewTestHandler,
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

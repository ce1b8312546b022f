// The scheduler binary runs the cron passes (notification dispatch and the
// missed-appointment sweep) without the HTTP API surface.
package main

import (
	"context"
	"log/slog"
	"os"

	"garage/config"
	"garage/internal/delivery"
	"garage/internal/delivery/cron"
	"garage/internal/infra/channel"
	logs "garage/internal/infra/log"
	"garage/internal/infra/persistence/postgres"
	"garage/internal/infra/pubsub"
	"garage/internal/usecase/impl"

	"go.uber.org/fx"
)

type startSchedulerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startScheduler,
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
			postgres.NewVehicleRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewRescheduleService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				cron.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startScheduler(ctx context.Context, params startSchedulerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

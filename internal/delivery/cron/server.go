// Package cron runs the scheduled notification passes: the dispatcher that
// delivers due notifications and the sweep that moves missed appointments.
package cron

import (
	"context"
	"log/slog"

	"garage/config"
	"garage/internal/delivery"
	"garage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultDispatchSchedule   = "@every 1m"
	defaultRescheduleSchedule = "5 0 * * *" // Daily, shortly after the UTC day rolls over.
)

// ServerParams holds dependencies for the cron server, injected by Fx.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	DispatchUC   usecase.DispatchUsecase
	RescheduleUC usecase.RescheduleUsecase
}

type cronServer struct {
	cfg          *config.Config
	logger       *slog.Logger
	runner       *cron.Cron
	dispatchUC   usecase.DispatchUsecase
	rescheduleUC usecase.RescheduleUsecase
}

// NewServer creates the cron delivery. Schedules come from configuration and
// accept standard cron expressions or @every shorthands.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &cronServer{
		cfg:          params.Config,
		logger:       params.Logger,
		runner:       cron.New(),
		dispatchUC:   params.DispatchUC,
		rescheduleUC: params.RescheduleUC,
	}

	dispatchSchedule := defaultDispatchSchedule
	rescheduleSchedule := defaultRescheduleSchedule
	if params.Config.Cron != nil {
		if params.Config.Cron.DispatchSchedule != "" {
			dispatchSchedule = params.Config.Cron.DispatchSchedule
		}
		if params.Config.Cron.RescheduleSchedule != "" {
			rescheduleSchedule = params.Config.Cron.RescheduleSchedule
		}
	}

	if _, err := srv.runner.AddFunc(dispatchSchedule, srv.runDispatch); err != nil {
		return nil, errors.Wrap(err, "invalid dispatch schedule")
	}
	if _, err := srv.runner.AddFunc(rescheduleSchedule, srv.runSweep); err != nil {
		return nil, errors.Wrap(err, "invalid reschedule schedule")
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the cron runner and blocks until it stops.
func (s *cronServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting cron scheduler")
	s.runner.Run()

	return nil
}

func (s *cronServer) stop(_ context.Context) error {
	s.logger.Info("Shutting down cron scheduler")
	stopCtx := s.runner.Stop()
	<-stopCtx.Done()

	return nil
}

func (s *cronServer) runDispatch() {
	ctx := context.Background()

	result, err := s.dispatchUC.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("dispatch pass failed", slog.String("error", err.Error()))

		return
	}

	if result.Processed > 0 {
		s.logger.Info("dispatch pass completed",
			slog.Int("processed", result.Processed),
			slog.Int("sent", result.Sent),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}
}

func (s *cronServer) runSweep() {
	ctx := context.Background()

	result, err := s.rescheduleUC.SweepMissed(ctx)
	if err != nil {
		s.logger.Error("reschedule sweep failed", slog.String("error", err.Error()))

		return
	}

	s.logger.Info("reschedule sweep completed",
		slog.Int("processed", result.Processed),
		slog.Int("rescheduled", result.Rescheduled),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
}

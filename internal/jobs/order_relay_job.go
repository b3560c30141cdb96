package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type placedOrderRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayPlacedOrdersCommand) (int, error)
}

// OrderRelayJob drains the placed order outbox to the kitchen topic.
// Overlapping runs are skipped.
type OrderRelayJob struct {
	relayer   placedOrderRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrderRelayJob(relayer placedOrderRelayer, schedule string, batchSize int, logger *slog.Logger) *OrderRelayJob {
	return &OrderRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "order_relay_job"),
	}
}

func (j *OrderRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order relay job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Run relays one batch.
func (j *OrderRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewRelayPlacedOrdersCommand(j.batchSize, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order relay job misconfigured", "error", err)
		return
	}

	relayed, err := j.relayer.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order relay job failed", "relayed", relayed, "error", err)
		return
	}

	if relayed == 0 {
		j.logger.DebugContext(ctx, "No placed orders to relay")
		return
	}
	j.logger.InfoContext(ctx, "Placed orders relayed", "relayed", relayed)
}

func (j *OrderRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order relay job stopped")
}

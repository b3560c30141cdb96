package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type currentOrderReader interface {
	Handle(ctx context.Context, query queries.GetCurrentOrderQuery) (queries.GetCurrentOrderQueryResponse, error)
}

// OpenOrderReportJob periodically logs the order being assembled, so a
// stalled order is visible in the logs.
type OpenOrderReportJob struct {
	reader   currentOrderReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOpenOrderReportJob(reader currentOrderReader, schedule string, logger *slog.Logger) *OpenOrderReportJob {
	return &OpenOrderReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "open_order_report_job"),
	}
}

func (j *OpenOrderReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open order report job started", "schedule", j.schedule)
	return nil
}

// Run logs the current order; an empty order is logged at debug level.
func (j *OpenOrderReportJob) Run(ctx context.Context) {
	current, err := j.reader.Handle(ctx, queries.NewGetCurrentOrderQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Open order report job failed", "error", err)
		return
	}

	level := slog.LevelInfo
	if len(current.Items) == 0 {
		level = slog.LevelDebug
	}

	j.logger.Log(ctx, level, "Open order",
		"number", current.Number,
		"items", len(current.Items),
		"total", current.Total,
	)
}

func (j *OpenOrderReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Open order report job stopped")
}

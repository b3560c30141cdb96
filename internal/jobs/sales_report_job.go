package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

type placedOrdersReader interface {
	Handle(ctx context.Context, query queries.GetPlacedOrdersQuery) ([]queries.GetPlacedOrdersQueryResponse, error)
}

// SalesReportJob periodically summarises order history.
type SalesReportJob struct {
	reader   placedOrdersReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSalesReportJob(reader placedOrdersReader, schedule string, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sales_report_job"),
	}
}

// Start schedules the report. It fails on a malformed schedule.
func (j *SalesReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *SalesReportJob) Run(ctx context.Context) {
	placed, err := j.reader.Handle(ctx, queries.NewGetPlacedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
		return
	}

	subtotal, salesTax, total := decimal.Zero, decimal.Zero, decimal.Zero
	items := 0
	for _, p := range placed {
		subtotal = subtotal.Add(p.Subtotal)
		salesTax = salesTax.Add(p.SalesTax)
		total = total.Add(p.Total)
		items += p.ItemCount
	}

	j.logger.InfoContext(ctx, "Sales report",
		"orders", len(placed),
		"items", items,
		"subtotal", kernel.FormatMoney(subtotal),
		"sales_tax", kernel.FormatMoney(salesTax),
		"total", kernel.FormatMoney(total),
	)
}

func (j *SalesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}

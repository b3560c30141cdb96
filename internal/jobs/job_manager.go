package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) of every job.
type Schedules struct {
	SalesReport     string
	OpenOrderReport string
}

type scheduledJob interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  scheduledJob
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []namedJob
}

func NewJobManager(
	placedOrders placedOrdersReader,
	currentOrder currentOrderReader,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "sales report job", job: NewSalesReportJob(placedOrders, schedules.SalesReport, logger)},
			{name: "open order report job", job: NewOpenOrderReportJob(currentOrder, schedules.OpenOrderReport, logger)},
		},
	}
}

// EnableOrderRelay adds the outbox relay. Call it before StartAll.
func (jm *JobManager) EnableOrderRelay(job *OrderRelayJob) {
	jm.jobs = append(jm.jobs, namedJob{name: "order relay job", job: job})
}

// StartAll starts all scheduled jobs in registration order.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for j := i - 1; j >= 0; j-- {
				jm.jobs[j].job.Stop()
			}
			return fmt.Errorf("failed to start %s: %w", nj.name, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs in reverse order and waits for running
// ones to finish.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].job.Stop()
	}
}

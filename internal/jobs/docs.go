// Package jobs provides scheduled background reports for the order desk.
//
// Jobs run on github.com/robfig/cron/v3 schedules with a seconds field:
//
//   - SalesReportJob logs how many orders were placed and the gross takings.
//   - OpenOrderReportJob logs the order currently being assembled.
//   - OrderRelayJob publishes placed orders from the outbox; it only runs
//     when enabled with JobManager.EnableOrderRelay.
//
// JobManager starts and stops them together:
//
//	jobManager := jobs.NewJobManager(placedOrders, currentOrder, schedules, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A failed start stops the jobs that were already running.
package jobs

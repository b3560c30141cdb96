package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"pizzeria/api"
	"pizzeria/cmd"
	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/orderevents"
	"pizzeria/internal/adapters/out/postgres/placedorderrepo"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "pizzeria",
		Short:         "Order desk service of the pizzeria",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to the .env file")

	root.AddCommand(newServeCmd(&envFile))
	root.AddCommand(newMigrateCmd(&envFile))
	root.AddCommand(newReportCmd(&envFile))
	root.AddCommand(newRelayCmd(&envFile))
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled reports",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := getConfigs(*envFile)
			if err != nil {
				return err
			}
			logger := newLogger(configs.LogLevel)

			db, err := openDatabase(configs)
			if err != nil {
				return err
			}

			app := cmd.NewCompositionRoot(configs, db)

			jobManager := jobs.NewJobManager(
				app.CreateGetPlacedOrdersQueryHandler(),
				app.CreateGetCurrentOrderQueryHandler(),
				jobs.Schedules{
					SalesReport:     configs.SalesReportSchedule,
					OpenOrderReport: configs.OpenOrderReportSchedule,
				},
				logger,
			)

			if configs.OrderRelayEnabled() {
				publisher := orderevents.NewOrderEventPublisher(configs.Brokers(), configs.KafkaOrdersTopic)
				defer func() {
					if err := publisher.Close(); err != nil {
						logger.Error("Failed to close order event publisher", "error", err)
					}
				}()
				jobManager.EnableOrderRelay(jobs.NewOrderRelayJob(
					app.CreateRelayPlacedOrdersCommandHandler(publisher),
					configs.OrderRelaySchedule,
					configs.OrderRelayBatchSize,
					logger,
				))
			} else {
				logger.Warn("KAFKA_BROKERS is empty, placed orders stay in the outbox")
			}

			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return startWebServer(ctx, app, configs.HTTPPort)
		},
	}
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the order history tables",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := getConfigs(*envFile)
			if err != nil {
				return err
			}

			if _, err = openDatabase(configs); err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func newReportCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print order history",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := getConfigs(*envFile)
			if err != nil {
				return err
			}

			db, err := openDatabase(configs)
			if err != nil {
				return err
			}

			app := cmd.NewCompositionRoot(configs, db)
			placed, err := app.CreateGetPlacedOrdersQueryHandler().Handle(c.Context(), queries.NewGetPlacedOrdersQuery())
			if err != nil {
				return err
			}

			return renderReport(c.OutOrStdout(), placed)
		},
	}
}

func newRelayCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "relay",
		Short: "Publish one batch of placed orders to Kafka",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := getConfigs(*envFile)
			if err != nil {
				return err
			}
			if !configs.OrderRelayEnabled() {
				return errors.New("KAFKA_BROKERS is not set")
			}

			db, err := openDatabase(configs)
			if err != nil {
				return err
			}

			publisher := orderevents.NewOrderEventPublisher(configs.Brokers(), configs.KafkaOrdersTopic)
			defer func() { _ = publisher.Close() }()

			app := cmd.NewCompositionRoot(configs, db)
			relayCmd, err := commands.NewRelayPlacedOrdersCommand(configs.OrderRelayBatchSize, time.Now().UTC())
			if err != nil {
				return err
			}

			relayed, err := app.CreateRelayPlacedOrdersCommandHandler(publisher).Handle(c.Context(), relayCmd)
			fmt.Fprintf(c.OutOrStdout(), "Relayed %d placed orders\n", relayed)
			return err
		},
	}
}

func getConfigs(envFile string) (cmd.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		return cmd.Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	batchSize, err := strconv.Atoi(getEnvOrDefault("ORDER_RELAY_BATCH_SIZE", "50"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("ORDER_RELAY_BATCH_SIZE: %w", err)
	}

	return cmd.Config{
		HTTPPort:                os.Getenv("HTTP_PORT"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  os.Getenv("DB_PORT"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               os.Getenv("DB_SSLMODE"),
		SalesReportSchedule:     getEnvOrDefault("SALES_REPORT_SCHEDULE", "0 0 * * * *"),
		OpenOrderReportSchedule: getEnvOrDefault("OPEN_ORDER_REPORT_SCHEDULE", "0 */5 * * * *"),
		LogLevel:                getEnvOrDefault("LOG_LEVEL", "info"),
		KafkaBrokers:            os.Getenv("KAFKA_BROKERS"),
		KafkaOrdersTopic:        getEnvOrDefault("KAFKA_ORDERS_TOPIC", "pizzeria.orders"),
		OrderRelaySchedule:      getEnvOrDefault("ORDER_RELAY_SCHEDULE", "*/5 * * * * *"),
		OrderRelayBatchSize:     batchSize,
	}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = db.AutoMigrate(&placedorderrepo.PlacedOrderDTO{}, &placedorderrepo.PlacedOrderLineDTO{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}
	validator, err := httpadapter.NewRequestValidator(doc)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := httpadapter.NewMetrics(registry)
	if err != nil {
		return err
	}

	e.Use(metrics.Middleware(), validator)

	server := httpadapter.NewServer(httpadapter.Handlers{
		AddItem:         app.CreateAddItemCommandHandler(),
		RemoveItem:      app.CreateRemoveItemCommandHandler(),
		SetOrderNumber:  app.CreateSetOrderNumberCommandHandler(),
		ResetOrder:      app.CreateResetOrderCommandHandler(),
		StartNewOrder:   app.CreateStartNewOrderCommandHandler(),
		PlaceOrder:      app.CreatePlaceOrderCommandHandler(),
		GetCurrentOrder: app.CreateGetCurrentOrderQueryHandler(),
		GetPlacedOrders: app.CreateGetPlacedOrdersQueryHandler(),
	})
	httpadapter.RegisterHandlers(e, server)
	httpadapter.RegisterHealth(e)
	httpadapter.RegisterMetrics(e, metrics)
	if err = httpadapter.RegisterDocs(e, doc); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

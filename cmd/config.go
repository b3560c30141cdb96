package cmd

import (
	"fmt"
	"strings"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	SalesReportSchedule     string
	OpenOrderReportSchedule string
	LogLevel                string

	// Order relay is disabled when KafkaBrokers is empty.
	KafkaBrokers        string
	KafkaOrdersTopic    string
	OrderRelaySchedule  string
	OrderRelayBatchSize int
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Brokers splits the comma separated broker list, dropping blanks.
func (c Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) OrderRelayEnabled() bool {
	return len(c.Brokers()) > 0
}

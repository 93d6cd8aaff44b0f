package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"fulfillment/internal/jobs"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the process environment. Values from a .env file in
// the working directory are loaded into the environment first.
type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	ReportSchedule string `envconfig:"REPORT_SCHEDULE"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig decodes the environment into a Config.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, err
	}
	if config.ReportSchedule == "" {
		config.ReportSchedule = jobs.DefaultStatusReportSchedule
	}
	return config, nil
}

// DSN renders the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// SlogLevel parses LogLevel, falling back to info for unknown names.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

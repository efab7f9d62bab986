package application

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ScheduleConfig defines when the daily evaluation pass runs.
type ScheduleConfig struct {
	DailyAt string `yaml:"daily_at"`
}

// Config defines evaluation scheduling and reminder delivery.
type Config struct {
	Schedule       ScheduleConfig `yaml:"schedule"`
	WebhookURL     string         `yaml:"webhook_url"`
	Template       string         `yaml:"template"`
	Cooldown       time.Duration  `yaml:"cooldown"`
	RequestTimeout time.Duration  `yaml:"request_timeout"`
	Workers        int            `yaml:"workers"`
}

// LoadConfig loads billing config from the yaml file named by BILLING_CONFIG,
// with env vars overriding file values.
func LoadConfig() (Config, error) {
	cfg := Config{
		Schedule:       ScheduleConfig{DailyAt: "07:00"},
		Cooldown:       20 * time.Hour,
		RequestTimeout: 5 * time.Second,
		Workers:        4,
	}

	if path := os.Getenv("BILLING_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("BILLING_DAILY_AT"); v != "" {
		cfg.Schedule.DailyAt = v
	}
	if v := os.Getenv("BILLING_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("BILLING_REMINDER_TEMPLATE"); v != "" {
		cfg.Template = v
	}
	if v := os.Getenv("BILLING_REMINDER_COOLDOWN"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cooldown = parsed
		}
	}
	return cfg, nil
}

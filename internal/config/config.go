// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type SlotsConfig struct {
	StartHour       int `yaml:"start_hour"`
	EndHour         int `yaml:"end_hour"`
	IntervalMinutes int `yaml:"interval_minutes"`
}

type EmailConfig struct {
	Region string `yaml:"region"`
	Sender string `yaml:"sender"`
	// Loaded from environment
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type RetentionConfig struct {
	// Days after which past appointments are purged; 0 disables the sweep.
	Days int    `yaml:"days"`
	Cron string `yaml:"cron"`
}

type LimitsConfig struct {
	BookCooldownSeconds int `yaml:"book_cooldown_seconds"`
	BookMaxPerHour      int `yaml:"book_max_per_hour"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		StaticDir   string `yaml:"static_dir"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Slots SlotsConfig `yaml:"slots"`

	Booking struct {
		PhoneRegion string `yaml:"phone_region"`
	} `yaml:"booking"`

	Email EmailConfig `yaml:"email"`

	Retention RetentionConfig `yaml:"retention"`

	Limits LimitsConfig `yaml:"limits"`
}

// Load loads both .env and yaml configuration.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.Email.AccessKeyID = os.Getenv("SES_ACCESS_KEY_ID")
	cfg.Email.SecretAccessKey = os.Getenv("SES_SECRET_ACCESS_KEY")

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Slots.StartHour == 0 && c.Slots.EndHour == 0 {
		c.Slots.StartHour = 9
		c.Slots.EndHour = 21
	}
	if c.Slots.IntervalMinutes == 0 {
		c.Slots.IntervalMinutes = 30
	}
	if c.Booking.PhoneRegion == "" {
		c.Booking.PhoneRegion = "AR"
	}
	if c.Retention.Cron == "" {
		c.Retention.Cron = "0 3 * * *"
	}
	if c.Limits.BookCooldownSeconds == 0 {
		c.Limits.BookCooldownSeconds = 2
	}
	if c.Limits.BookMaxPerHour == 0 {
		c.Limits.BookMaxPerHour = 30
	}
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for sqlite")
		}
	case "json":
		if c.Database.Filename == "" {
			return fmt.Errorf("database filename is required for json")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Slots.StartHour < 0 || c.Slots.StartHour > 23 || c.Slots.EndHour < 0 || c.Slots.EndHour > 23 {
		return fmt.Errorf("slot hours must be between 0 and 23")
	}
	if c.Slots.StartHour >= c.Slots.EndHour {
		return fmt.Errorf("slots start_hour must be before end_hour")
	}
	if c.Slots.IntervalMinutes <= 0 || c.Slots.IntervalMinutes > 60 {
		return fmt.Errorf("slots interval_minutes must be between 1 and 60")
	}

	if c.Retention.Days < 0 {
		return fmt.Errorf("retention days must be 0 or greater")
	}

	if c.Email.Sender != "" && c.Email.Region == "" {
		return fmt.Errorf("email region is required when a sender is configured")
	}

	return nil
}

// EmailEnabled reports whether every value needed to send mail is present.
func (c *Config) EmailEnabled() bool {
	return c.Email.Sender != "" && c.Email.Region != "" &&
		c.Email.AccessKeyID != "" && c.Email.SecretAccessKey != ""
}

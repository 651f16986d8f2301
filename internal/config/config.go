package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"marketetl/internal/util"

	"gopkg.in/yaml.v3"
)

// Config holds all pipeline configuration.
type Config struct {
	Tickers   []string `yaml:"tickers"`
	StartDate string   `yaml:"start_date"`
	EndDate   string   `yaml:"end_date"`
	Database  struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Name     string `yaml:"name"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`
	RiskFreeRate float64 `yaml:"risk_free_rate"`
	Report       struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"report"`
	CSV struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"csv"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults. A missing file is fine; env and defaults carry.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("POSTGRES_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("POSTGRES_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("POSTGRES_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"NVDA", "QQQ"}
	}
	if cfg.StartDate == "" {
		cfg.StartDate = "2019-01-01"
	}
	if cfg.EndDate == "" {
		cfg.EndDate = "2024-01-01"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "postgres"
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "require"
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = "performance_report.html"
	}
	if cfg.CSV.OutputPath == "" {
		cfg.CSV.OutputPath = "daily_returns.csv"
	}

	return cfg, nil
}

// ApplyOverrides merges command line overrides into the config. Empty
// values leave the config untouched. Tickers are deduped and uppercased.
func ApplyOverrides(cfg *Config, tickers, startDate, endDate string) {
	if tickers != "" {
		set := util.NewSet()
		for _, t := range strings.Split(tickers, ",") {
			if t = strings.TrimSpace(t); t != "" {
				set.Add(strings.ToUpper(t))
			}
		}
		cfg.Tickers = set.List()
	}
	if startDate != "" {
		cfg.StartDate = startDate
	}
	if endDate != "" {
		cfg.EndDate = endDate
	}
}

// Validate checks that all required fields are set and parseable.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers is required")
	}
	start, end, err := c.Window()
	if err != nil {
		return err
	}
	if !start.Before(end) {
		return fmt.Errorf("start_date %s must be before end_date %s", c.StartDate, c.EndDate)
	}
	if c.Database.Password == "" {
		return fmt.Errorf("database password is required (set POSTGRES_PASSWORD)")
	}
	return nil
}

// Window returns the [start, end) date range of the run.
func (c *Config) Window() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end_date: %w", err)
	}
	return start, end, nil
}

func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     c.Database.Name,
		RawQuery: "sslmode=" + c.Database.SSLMode,
	}
	return u.String()
}

package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Geo        GeoConfig        `yaml:"geo"`
	Push       PushConfig       `yaml:"push"`
	Reminder   ReminderConfig   `yaml:"reminder"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Report     ReportConfig     `yaml:"report"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// GeoConfig holds the configuration for the postcode distance resolver.
type GeoConfig struct {
	NominatimURL   string        `yaml:"nominatim_url"`
	OSRMURL        string        `yaml:"osrm_url"`
	UserAgent      string        `yaml:"user_agent"`
	Country        string        `yaml:"country"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
	RequestsPerSec float64       `yaml:"requests_per_sec"`
	// Coordinates used when a postcode cannot be geocoded.
	DefaultOriginLat float64 `yaml:"default_origin_lat"`
	DefaultOriginLon float64 `yaml:"default_origin_lon"`
	DefaultDestLat   float64 `yaml:"default_dest_lat"`
	DefaultDestLon   float64 `yaml:"default_dest_lon"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// ReminderConfig holds the configuration for the policy review reminder service.
type ReminderConfig struct {
	Enabled         bool          `yaml:"enabled"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"` // Ignored by YAML parser
	LeadDays        int           `yaml:"lead_days"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// ReportConfig holds reporting metadata.
type ReportConfig struct {
	CompanyName string `yaml:"company_name"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "esg_index.db"
	}

	applyGeoDefaults(&cfg.Geo)

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.Reminder.IntervalSeconds <= 0 {
		cfg.Reminder.IntervalSeconds = 3600
	}
	cfg.Reminder.Interval = time.Duration(cfg.Reminder.IntervalSeconds) * time.Second
	if cfg.Reminder.LeadDays <= 0 {
		cfg.Reminder.LeadDays = 90
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	if cfg.Report.CompanyName == "" {
		cfg.Report.CompanyName = "Example Company AB"
	}

	return &cfg, nil
}

func applyGeoDefaults(geo *GeoConfig) {
	if geo.NominatimURL == "" {
		geo.NominatimURL = "https://nominatim.openstreetmap.org/search"
	}
	if geo.OSRMURL == "" {
		geo.OSRMURL = "http://router.project-osrm.org"
	}
	if geo.UserAgent == "" {
		geo.UserAgent = "ESG App/1.0"
	}
	if geo.Country == "" {
		geo.Country = "Sweden"
	}
	if geo.TimeoutSeconds <= 0 {
		geo.TimeoutSeconds = 5
	}
	geo.Timeout = time.Duration(geo.TimeoutSeconds) * time.Second
	// The Nominatim usage policy allows at most one request per second.
	if geo.RequestsPerSec <= 0 || geo.RequestsPerSec > 1 {
		geo.RequestsPerSec = 1
	}
	// Linköping and Norrköping centroids.
	if geo.DefaultOriginLat == 0 && geo.DefaultOriginLon == 0 {
		geo.DefaultOriginLat, geo.DefaultOriginLon = 58.4, 15.6
	}
	if geo.DefaultDestLat == 0 && geo.DefaultDestLon == 0 {
		geo.DefaultDestLat, geo.DefaultDestLon = 58.6, 16.2
	}
}

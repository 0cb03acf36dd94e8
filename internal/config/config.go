// Package config resolves runtime settings from .env, an optional YAML
// file and the process environment, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultHallsURL = "https://wesleynederpel.github.io/BoulderhallData/boulderhalls.json"

type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	Bucket    string `yaml:"bucket"`
	Object    string `yaml:"object"`
}

type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	LogDev   bool   `yaml:"log_dev"`

	HallsSource      string        `yaml:"halls_source"` // http | file | s3
	HallsURL         string        `yaml:"halls_url"`
	HallsFile        string        `yaml:"halls_file"`
	HallsMaxAttempts int           `yaml:"halls_max_attempts"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	S3               S3            `yaml:"s3"`
	HallsSnapshot    bool          `yaml:"halls_snapshot"`

	FavoritesStore string `yaml:"favorites_store"` // memory | sqlite | postgres | redis
	DBPath         string `yaml:"db_path"`
	DatabaseURL    string `yaml:"database_url"`
	RedisAddr      string `yaml:"redis_addr"`

	LocationProvider string  `yaml:"location_provider"` // fixed | ip | denied
	LocationURL      string  `yaml:"location_url"`
	FixedLat         float64 `yaml:"fixed_lat"`
	FixedLon         float64 `yaml:"fixed_lon"`

	RatingMode string `yaml:"rating_mode"` // random | stable
}

// Defaults mirror the behavior of the mobile app: the public halls document,
// no retries, random ratings and the Netherlands center as fixed location.
func Defaults() Config {
	return Config{
		Port:             "8080",
		LogLevel:         "info",
		HallsSource:      "http",
		HallsURL:         DefaultHallsURL,
		HallsFile:        "data/boulderhalls.json",
		HallsMaxAttempts: 1,
		HTTPTimeout:      10 * time.Second,
		S3:               S3{Object: "boulderhalls.json"},
		HallsSnapshot:    true,
		FavoritesStore:   "sqlite",
		DBPath:           "data/app.db",
		RedisAddr:        "localhost:6379",
		LocationProvider: "fixed",
		LocationURL:      "https://am.i.mullvad.net/json",
		FixedLat:         52.1326,
		FixedLon:         5.2913,
		RatingMode:       "random",
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (when present), then the YAML file named by CONFIG_FILE,
// then applies environment overrides and validates the result.
func Load() (Config, bool, error) {
	envLoaded := godotenv.Load() == nil

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, envLoaded, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, envLoaded, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, envLoaded, err
	}

	return cfg, envLoaded, nil
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = Get("PORT", c.Port)
	c.LogLevel = Get("LOG_LEVEL", c.LogLevel)
	c.HallsSource = Get("HALLS_SOURCE", c.HallsSource)
	c.HallsURL = Get("HALLS_URL", c.HallsURL)
	c.HallsFile = Get("HALLS_FILE", c.HallsFile)
	c.S3.Endpoint = Get("HALLS_S3_ENDPOINT", c.S3.Endpoint)
	c.S3.AccessKey = Get("HALLS_S3_ACCESS_KEY", c.S3.AccessKey)
	c.S3.SecretKey = Get("HALLS_S3_SECRET_KEY", c.S3.SecretKey)
	c.S3.Bucket = Get("HALLS_S3_BUCKET", c.S3.Bucket)
	c.S3.Object = Get("HALLS_S3_OBJECT", c.S3.Object)
	c.FavoritesStore = Get("FAVORITES_STORE", c.FavoritesStore)
	c.DBPath = Get("DB_PATH", c.DBPath)
	c.DatabaseURL = Get("DATABASE_URL", c.DatabaseURL)
	c.RedisAddr = Get("REDIS_ADDR", c.RedisAddr)
	c.LocationProvider = Get("LOCATION_PROVIDER", c.LocationProvider)
	c.LocationURL = Get("LOCATION_URL", c.LocationURL)
	c.RatingMode = Get("RATING_MODE", c.RatingMode)

	var err error
	if c.LogDev, err = getBool("LOG_DEV", c.LogDev); err != nil {
		return err
	}
	if c.S3.UseSSL, err = getBool("HALLS_S3_USE_SSL", c.S3.UseSSL); err != nil {
		return err
	}
	if c.HallsSnapshot, err = getBool("HALLS_SNAPSHOT", c.HallsSnapshot); err != nil {
		return err
	}
	if v := os.Getenv("HALLS_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid HALLS_MAX_ATTEMPTS %q: %w", v, err)
		}
		c.HallsMaxAttempts = n
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		c.HTTPTimeout = d
	}
	if c.FixedLat, err = getFloat("FIXED_LAT", c.FixedLat); err != nil {
		return err
	}
	if c.FixedLon, err = getFloat("FIXED_LON", c.FixedLon); err != nil {
		return err
	}

	return nil
}

// Validate checks enumerated settings and the settings each choice requires.
func (c Config) Validate() error {
	switch c.HallsSource {
	case "http":
		if strings.TrimSpace(c.HallsURL) == "" {
			return fmt.Errorf("config: HALLS_URL is required for http source")
		}
	case "file":
		if strings.TrimSpace(c.HallsFile) == "" {
			return fmt.Errorf("config: HALLS_FILE is required for file source")
		}
	case "s3":
		if c.S3.Endpoint == "" || c.S3.AccessKey == "" || c.S3.SecretKey == "" || c.S3.Bucket == "" {
			return fmt.Errorf("config: s3 source requires HALLS_S3_ENDPOINT, HALLS_S3_ACCESS_KEY, HALLS_S3_SECRET_KEY and HALLS_S3_BUCKET")
		}
	default:
		return fmt.Errorf("config: unknown HALLS_SOURCE %q (must be http, file, or s3)", c.HallsSource)
	}

	switch c.FavoritesStore {
	case "memory", "sqlite", "redis":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for postgres favorites store")
		}
	default:
		return fmt.Errorf("config: unknown FAVORITES_STORE %q (must be memory, sqlite, postgres, or redis)", c.FavoritesStore)
	}

	switch c.LocationProvider {
	case "fixed", "ip", "denied":
	default:
		return fmt.Errorf("config: unknown LOCATION_PROVIDER %q (must be fixed, ip, or denied)", c.LocationProvider)
	}

	switch c.RatingMode {
	case "random", "stable":
	default:
		return fmt.Errorf("config: unknown RATING_MODE %q (must be random or stable)", c.RatingMode)
	}

	if c.HallsMaxAttempts < 1 || c.HallsMaxAttempts > 10 {
		return fmt.Errorf("config: HALLS_MAX_ATTEMPTS must be between 1 and 10")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: HTTP_TIMEOUT must be positive")
	}

	return nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

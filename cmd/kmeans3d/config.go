package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/kmeans3d"
)

// Config is the on-disk configuration. Command-line flags override it.
type Config struct {
	K             int               `toml:"k"`
	MaxIterations int               `toml:"max_iterations"`
	Seed          *int64            `toml:"seed"`
	RejectNaN     bool              `toml:"reject_nan"`
	Log           LogConfig         `toml:"log"`
	Metrics       MetricsConfig     `toml:"metrics"`
	ObjectStore   ObjectStoreConfig `toml:"object_store"`

	// kSet records whether k came from the file or a flag.
	kSet bool
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	Compress   bool   `toml:"compress"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// Object store drivers for s3:// locations.
const (
	DriverS3    = "s3"
	DriverMinIO = "minio"
)

// ObjectStoreConfig configures s3:// locations. Driver defaults to minio when
// an endpoint is set and to s3 (AWS SDK default chain) otherwise.
type ObjectStoreConfig struct {
	Driver    string `toml:"driver"`
	Endpoint  string `toml:"endpoint"`
	Region    string `toml:"region"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		MaxIterations: kmeans3d.DefaultMaxIterations,
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig decodes path over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.kSet = md.IsDefined("k")

	return cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if !c.kSet {
		return fmt.Errorf("k is required")
	}
	if c.K < 0 {
		return fmt.Errorf("k must not be negative, got %d", c.K)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	switch c.ObjectStore.driver() {
	case DriverS3:
	case DriverMinIO:
		if c.ObjectStore.Endpoint == "" {
			return fmt.Errorf("object store driver %q needs an endpoint", DriverMinIO)
		}
	default:
		return fmt.Errorf("unknown object store driver %q", c.ObjectStore.Driver)
	}
	return nil
}

func (o ObjectStoreConfig) driver() string {
	switch {
	case o.Driver != "":
		return o.Driver
	case o.Endpoint != "":
		return DriverMinIO
	default:
		return DriverS3
	}
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", l.Level)
	}
	return level, nil
}

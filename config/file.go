package config

import (
	"errors"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

var ErrReadingConfigFileFailed = errors.New("reading config file failed")
var ErrParsingConfigFileFailed = errors.New("parsing config file failed")

// FileConfig mirrors Config with TOML friendly types. Durations are strings like "5m".
// Zero values leave the corresponding setting untouched.
type FileConfig struct {
	DSN         string         `toml:"dsn"`
	Adapter     string         `toml:"adapter"`
	TablePrefix string         `toml:"table_prefix"`
	Log         FileLogConfig  `toml:"log"`
	Pool        FilePoolConfig `toml:"pool"`
}

// FileLogConfig is the [log] table.
type FileLogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// FilePoolConfig is the [pool] table.
type FilePoolConfig struct {
	MaxConns          int32  `toml:"max_conns"`
	MinConns          int32  `toml:"min_conns"`
	MaxConnLifetime   string `toml:"max_conn_lifetime"`
	MaxConnIdleTime   string `toml:"max_conn_idle_time"`
	HealthCheckPeriod string `toml:"health_check_period"`
	ConnectTimeout    string `toml:"connect_timeout"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.Join(ErrReadingConfigFileFailed, err)
	}

	return ParseFile(raw)
}

// ParseFile parses TOML config content.
func ParseFile(raw []byte) (FileConfig, error) {
	var fc FileConfig

	if err := toml.Unmarshal(raw, &fc); err != nil {
		return fc, errors.Join(ErrParsingConfigFileFailed, err)
	}

	return fc, nil
}

// ApplyFile copies every non-zero setting of fc onto cfg.
func ApplyFile(cfg *Config, fc FileConfig) error {
	setString(fc.DSN, &cfg.DSN)
	setString(fc.Adapter, &cfg.Adapter)
	setString(fc.TablePrefix, &cfg.TablePrefix)
	setString(fc.Log.Level, &cfg.LogLevel)
	setString(fc.Log.Format, &cfg.LogFormat)

	if fc.Pool.MaxConns > 0 {
		cfg.Pool.MaxConns = fc.Pool.MaxConns
	}

	if fc.Pool.MinConns > 0 {
		cfg.Pool.MinConns = fc.Pool.MinConns
	}

	durations := []struct {
		raw    string
		target *time.Duration
	}{
		{fc.Pool.MaxConnLifetime, &cfg.Pool.MaxConnLifetime},
		{fc.Pool.MaxConnIdleTime, &cfg.Pool.MaxConnIdleTime},
		{fc.Pool.HealthCheckPeriod, &cfg.Pool.HealthCheckPeriod},
		{fc.Pool.ConnectTimeout, &cfg.Pool.ConnectTimeout},
	}

	for _, d := range durations {
		if err := setDuration(d.raw, d.target); err != nil {
			return errors.Join(ErrParsingConfigFileFailed, err)
		}
	}

	return nil
}

// FileExists reports whether a file exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func setString(value string, target *string) {
	if value != "" {
		*target = value
	}
}

func setDuration(value string, target *time.Duration) error {
	if value == "" {
		return nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}

	*target = d

	return nil
}

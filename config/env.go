package config

import "os"

// Environment variables overriding file settings.
const (
	EnvDSN         = "SHOP_DSN"
	EnvAdapter     = "SHOP_ADAPTER"
	EnvTablePrefix = "SHOP_TABLE_PREFIX"
	EnvLogLevel    = "SHOP_LOG_LEVEL"
	EnvLogFormat   = "SHOP_LOG_FORMAT"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv copies every non-empty SHOP_* variable onto cfg.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for key, target := range map[string]*string{
		EnvDSN:         &cfg.DSN,
		EnvAdapter:     &cfg.Adapter,
		EnvTablePrefix: &cfg.TablePrefix,
		EnvLogLevel:    &cfg.LogLevel,
		EnvLogFormat:   &cfg.LogFormat,
	} {
		if value, ok := lookup(key); ok {
			setString(value, target)
		}
	}
}

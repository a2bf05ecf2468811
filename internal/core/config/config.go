package config

import (
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: env key read by viper
// - default: value to set when the variable is absent
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`

	// Store holds the document-store configuration.
	Store StoreConfig `mapstructure:",squash"`

	// Reports holds the report export configuration.
	Reports ReportConfig `mapstructure:",squash"`
}

// StoreConfig selects and configures the document-store backend.
type StoreConfig struct {
	// Backend is the store implementation: "file" or "redis".
	Backend string `mapstructure:"STORE_BACKEND" default:"file"`
	// DataDir is the directory holding the collection files (file backend).
	DataDir string `mapstructure:"DATA_DIR" default:"datos"`
	// RedisURL is the connection URL (redis backend only).
	// Format: redis://[:password@]host[:port][/database]
	RedisURL string `mapstructure:"REDIS_URL"`
}

// ReportConfig holds settings for the plain-text report export.
type ReportConfig struct {
	// ExportDir is the directory where exported report files are written.
	ExportDir string `mapstructure:"REPORT_DIR" default:"."`
}

// Load reads configuration from environment variables.
// A .env file, if any, is loaded into the environment by the caller before
// this runs; Load itself only talks to the environment through viper.
func Load() (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate enforces the cross-field rules the tag scheme cannot express.
func (c *AppConfig) validate() error {
	switch c.Store.Backend {
	case StoreBackendFile:
	case StoreBackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("missing required configuration: REDIS_URL (STORE_BACKEND=%s)", StoreBackendRedis)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND: %q (expected %q or %q)", c.Store.Backend, StoreBackendFile, StoreBackendRedis)
	}
	return nil
}

// processTags iterates over the struct fields, binding each env key and
// setting default values in viper. Binding is what makes AutomaticEnv
// visible to Unmarshal.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the
// blowfish tooling.
type Config struct {
	// Full path to file to which logs will be written. Blank will write to stdout.
	LogFilePath string `mapstructure:"log_file_path"`
	// Minimum level of a log required to be written. Options: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`
	// Log line encoding. Options: text, json
	LogFormat string `mapstructure:"log_format"`

	Vectors struct {
		// Optional YAML file replacing the built-in known-answer vectors.
		File string `mapstructure:"file"`
	} `mapstructure:"vectors"`

	KeyCache struct {
		// How long a scheduled cipher stays cached after it was last stored.
		Expiration time.Duration `mapstructure:"expiration"`
		// How often expired ciphers are purged.
		CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	} `mapstructure:"key_cache"`
}

const envVarPrefix = "BLOWFISH"

var defaults = map[string]interface{}{
	"log_file_path":              "",
	"log_level":                  "info",
	"log_format":                 "text",
	"vectors.file":               "",
	"key_cache.expiration":       "5m",
	"key_cache.cleanup_interval": "1m",
}

// LoadConfig reads config.yaml from configPath, layered over the defaults and
// under any BLOWFISH_* environment variables. An empty configPath skips the
// file entirely.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envVarPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.AddConfigPath(configPath)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("no config file in path %s", configPath)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, key_cache.expiration can be set using:
	// <envVarPrefix>_KEY_CACHE_EXPIRATION
	for _, k := range v.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := v.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", k, envVarPrefix+"_"+envVar, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshaling config object: %w", err)
	}
	return config, nil
}

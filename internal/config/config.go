/*
 * Copyright (c) 2026 RustyDB Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package config provides configuration management for RustyDB.

Configuration sources, in order of precedence:
 1. Command-line flags (applied by the caller, highest priority)
 2. Environment variables with the RUSTYDB_ prefix
 3. Configuration file (YAML), if one is given
 4. Default values (lowest priority)

Example configuration file:

	# RustyDB Configuration
	host: "0.0.0.0"
	port: 3000
	log_level: "info"
	log_json: false
	shutdown_timeout_secs: 10

Environment Variables:
  - RUSTYDB_HOST: Listen address for the HTTP API
  - RUSTYDB_PORT: Listen port
  - RUSTYDB_LOG_LEVEL: Log level (debug, info, warn, error)
  - RUSTYDB_LOG_JSON: Enable JSON logging (true/false)
  - RUSTYDB_SHUTDOWN_TIMEOUT_SECS: Graceful shutdown timeout
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultHost                = "127.0.0.1"
	DefaultPort                = 3000
	DefaultLogLevel            = "info"
	DefaultShutdownTimeoutSecs = 10
)

// Config holds all configuration values for RustyDB.
type Config struct {
	// Server configuration
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`

	// Graceful shutdown timeout in seconds
	ShutdownTimeoutSecs int `mapstructure:"shutdown_timeout_secs"`

	// ConfigFile records which file was loaded, empty when running on
	// defaults and environment only. Not read from the file itself.
	ConfigFile string `mapstructure:"-"`
}

// Load builds a Config from defaults, the optional config file at
// path, and RUSTYDB_ environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_json", false)
	v.SetDefault("shutdown_timeout_secs", DefaultShutdownTimeoutSecs)

	v.SetEnvPrefix("RUSTYDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigFile = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the server cannot run
// with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ShutdownTimeoutSecs < 0 {
		return fmt.Errorf("invalid shutdown timeout: %d", c.ShutdownTimeoutSecs)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	return nil
}

// Addr returns the host:port the server should listen on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ShutdownTimeout returns the graceful shutdown timeout as a Duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSecs) * time.Second
}

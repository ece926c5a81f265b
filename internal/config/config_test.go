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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, DefaultShutdownTimeoutSecs, cfg.ShutdownTimeoutSecs)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RUSTYDB_PORT", "8080")
	t.Setenv("RUSTYDB_LOG_LEVEL", "debug")
	t.Setenv("RUSTYDB_LOG_JSON", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	// Untouched values keep their defaults.
	assert.Equal(t, DefaultHost, cfg.Host)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rustydb.yaml")
	content := `host: "0.0.0.0"
port: 4000
log_level: "warn"
shutdown_timeout_secs: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 3, cfg.ShutdownTimeoutSecs)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rustydb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\n"), 0o644))
	t.Setenv("RUSTYDB_PORT", "5000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Host:                DefaultHost,
			Port:                DefaultPort,
			LogLevel:            DefaultLogLevel,
			ShutdownTimeoutSecs: DefaultShutdownTimeoutSecs,
		}
	}

	cfg := base()
	require.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.ShutdownTimeoutSecs = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	// Level names are case-insensitive and "warning" is accepted.
	cfg = base()
	cfg.LogLevel = "WARNING"
	assert.NoError(t, cfg.Validate())
}

func TestAddrAndShutdownTimeout(t *testing.T) {
	cfg := Config{Host: "0.0.0.0", Port: 9999, ShutdownTimeoutSecs: 25}
	assert.Equal(t, "0.0.0.0:9999", cfg.Addr())
	assert.Equal(t, 25*time.Second, cfg.ShutdownTimeout())
}

// Config loading for the steward CLI. Connection parameters come from the
// environment first (STEWARD_* variables), with an optional config.yaml in
// the resolved config directory underneath.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/volunteerhub/steward/internal/paths"
	"github.com/volunteerhub/steward/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys. Environment overrides use the STEWARD_ prefix:
	// STEWARD_HOST, STEWARD_PASSWORD, STEWARD_MAX_CONNS, and so on.
	cfgKeyDriver         = "driver"
	cfgKeyHost           = "host"
	cfgKeyPort           = "port"
	cfgKeyUser           = "user"
	cfgKeyPassword       = "password"
	cfgKeyDatabase       = "database"
	cfgKeyMaxConns       = "max_conns"
	cfgKeyRejectWhenBusy = "reject_when_busy"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Steward configuration.
# Every key can be overridden with a STEWARD_-prefixed environment variable.

# Database driver: mysql or sqlite
driver: mysql

# Connection parameters (mysql). For sqlite, set database to a file path.
host: 127.0.0.1
# port: 3306
# user:
# password:
# database:

# Pool size bound
# max_conns: 10

# Fail immediately instead of queueing when the pool is saturated
# reject_when_busy: false
`

// loadConfig reads config.yaml from the resolved config directory and layers
// STEWARD_* environment variables on top. It creates the config directory
// and a default config.yaml on first run; a missing config.yaml is not an
// error.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDriver, types.DriverMySQL)
	v.SetDefault(cfgKeyHost, "127.0.0.1")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("STEWARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Driver:         v.GetString(cfgKeyDriver),
		Host:           v.GetString(cfgKeyHost),
		Port:           v.GetInt(cfgKeyPort),
		User:           v.GetString(cfgKeyUser),
		Password:       v.GetString(cfgKeyPassword),
		Database:       v.GetString(cfgKeyDatabase),
		MaxConns:       v.GetInt(cfgKeyMaxConns),
		RejectWhenBusy: v.GetBool(cfgKeyRejectWhenBusy),
	}

	// SQLite without an explicit path lands in the platform data dir.
	if cfg.Driver == types.DriverSQLite && cfg.Database == "" {
		dataDir, err := paths.ResolveDataDir()
		if err != nil {
			return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return types.Config{}, fmt.Errorf("ensure data dir: %w", err)
		}
		cfg.Database = filepath.Join(dataDir, "steward.db")
	}

	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// Config loading for the modelctl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/wennys/modelbuddy/internal/paths"
	"github.com/wennys/modelbuddy/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDriver = "driver"
	cfgKeyDSN    = "dsn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# modelctl configuration

# Database driver: sqlite, mysql, or postgres
driver: sqlite

# Connection string (optional; overridable by --dsn flag or MODELCTL_DSN)
# dsn:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDriver, types.DriverSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes the default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MODELCTL_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDriver returns the driver name: --driver flag > config.yaml.
func resolveDriver() string {
	if flagDriver != "" {
		return flagDriver
	}
	if configDriver != "" {
		return configDriver
	}
	return types.DriverSQLite
}

// resolveDSN returns the connection string: --dsn flag > config.yaml >
// MODELCTL_DSN env > $(CWD)/modelctl.db.
func resolveDSN() (string, error) {
	return paths.ResolveDSN(flagDSN, configDSN)
}

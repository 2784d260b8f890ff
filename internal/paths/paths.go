// Package paths resolves the modelctl configuration directory and the
// default SQLite database location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative fallback names.
const (
	DefaultConfigDirName = ".modelctl"
	DefaultDatabaseName  = "modelctl.db"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "MODELCTL_CONFIG_DIR"
	EnvDSN       = "MODELCTL_DSN"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/modelctl (fallback ~/.config/modelctl)
// macOS:   ~/Library/Application Support/modelctl
// Windows: %APPDATA%/modelctl
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "modelctl"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "modelctl"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "modelctl"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > MODELCTL_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDSN returns the connection string following the precedence chain:
// flag > config file value > MODELCTL_DSN env > $(CWD)/modelctl.db.
// The final fallback only makes sense for the sqlite driver.
func ResolveDSN(flag, configValue string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	if env := os.Getenv(EnvDSN); env != "" {
		return env, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDatabaseName), nil
}

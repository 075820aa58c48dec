// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thatcatcamp/themekit/internal/state"
)

// EnvPrefix prefixes environment overrides, e.g. THEMEKIT_SERVER_HTTP_PORT
const EnvPrefix = "THEMEKIT"

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.rate_limit", 30) // preference writes per client per minute
	v.SetDefault("server.cookie_max_age", 365*24*60*60)
	v.SetDefault("server.csrf_protection", true)
	v.SetDefault("server.hsts", false)
	v.SetDefault("server.blocked_ips", []string{})
	v.SetDefault("server.metrics_allowed_ips", []string{})
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.session_ttl", "720h")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(defaultDataDir(), "themekit.db"))

	// Theme defaults
	v.SetDefault("theme.default_design", "material")
	v.SetDefault("theme.default_preset", "default")
	v.SetDefault("theme.default_mode", "system")
	v.SetDefault("theme.default_pack", "")

	// Build defaults
	v.SetDefault("build.output_dir", "dist/themes")
	v.SetDefault("build.minify", true)
	v.SetDefault("build.source_maps", false)
	v.SetDefault("build.include_packs", false)
	v.SetDefault("build.bundle", true)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".themekit")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as []string
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}

// ThemeDefaults returns the configured resolver fallbacks. Without a
// loaded config it returns the built-in defaults.
func ThemeDefaults() state.Defaults {
	if v == nil {
		return state.DefaultDefaults()
	}
	return state.Defaults{
		Theme:  v.GetString("theme.default_design"),
		Preset: v.GetString("theme.default_preset"),
		Mode:   v.GetString("theme.default_mode"),
		Pack:   v.GetString("theme.default_pack"),
	}
}

// Package config reads SkillPilot settings from an optional config file and
// SKILLPILOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
	"github.com/spf13/viper"
)

const envPrefix = "SKILLPILOT"

const (
	EnvConfig       = "SKILLPILOT_CONFIG"
	EnvDB           = "SKILLPILOT_DB"
	EnvCatalog      = "SKILLPILOT_CATALOG"
	EnvLogUseCases  = "SKILLPILOT_LOG_USECASES"
	EnvDefaultHours = "SKILLPILOT_DEFAULT_HOURS"
)

// Keys in the config file. With the SKILLPILOT_ prefix they double as the
// environment variable names.
const (
	keyDB           = "db"
	keyCatalog      = "catalog"
	keyLogUseCases  = "log_usecases"
	keyDefaultHours = "default_hours"
)

// Config holds process-wide settings.
type Config struct {
	DBPath       string
	CatalogPath  string // empty means the built-in catalog
	LogUseCases  bool
	DefaultHours float64
}

// Dir is where SkillPilot keeps its database and config file: ~/.skillpilot,
// or .skillpilot in the working directory when there is no home directory.
func Dir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".skillpilot")
	}
	return ".skillpilot"
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DBPath:       filepath.Join(Dir(), "skillpilot.db"),
		DefaultHours: roadmap.DefaultHoursPerDay,
	}
}

// LoadConfig reads Dir()/config.{toml,yaml,json} (or the file named by
// SKILLPILOT_CONFIG) and then the environment. Environment variables win over
// the file; invalid values fall back to the defaults.
func LoadConfig() (Config, error) {
	return Load(viper.New())
}

// Load reads configuration into v.
func Load(v *viper.Viper) (Config, error) {
	def := DefaultConfig()
	v.SetDefault(keyDB, def.DBPath)
	v.SetDefault(keyCatalog, def.CatalogPath)
	v.SetDefault(keyLogUseCases, def.LogUseCases)
	v.SetDefault(keyDefaultHours, def.DefaultHours)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if file := os.Getenv(EnvConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(Dir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return def, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		DBPath:       v.GetString(keyDB),
		CatalogPath:  v.GetString(keyCatalog),
		LogUseCases:  v.GetBool(keyLogUseCases),
		DefaultHours: v.GetFloat64(keyDefaultHours),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.DefaultHours < domain.MinHoursPerDay || cfg.DefaultHours > domain.MaxHoursPerDay {
		cfg.DefaultHours = def.DefaultHours
	}
	return cfg, nil
}

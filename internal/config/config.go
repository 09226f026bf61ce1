// Package config loads dayline settings from dayline.yaml and DAYLINE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/alexanderramin/dayline/internal/scheduler"
	"github.com/spf13/viper"
)

const envPrefix = "DAYLINE"

// SlotConfig is one user-defined meal slot. Time uses the TimeRef text form:
// "HH:MM", "wake+30", "training-120", "meal1+240".
type SlotConfig struct {
	Number int    `mapstructure:"number"`
	Name   string `mapstructure:"name"`
	Time   string `mapstructure:"time"`
}

type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

type Config struct {
	DBPath      string       `mapstructure:"db_path"`
	Log         LogConfig    `mapstructure:"log"`
	Timezone    string       `mapstructure:"timezone"`
	CatalogPath string       `mapstructure:"catalog_path"`
	Slots       []SlotConfig `mapstructure:"slots"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// DefaultDir is ~/.dayline, or the working directory when home is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".dayline")
}

func setDefaults(v *viper.Viper) {
	dir := DefaultDir()
	v.SetDefault("db_path", filepath.Join(dir, "dayline.db"))
	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", dir)
	v.SetDefault("timezone", "Local")
	v.SetDefault("catalog_path", "")
}

// New returns a viper instance with defaults, env binding and search paths
// set. An explicit file, when given, replaces the search.
func New(file string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName("dayline") // .yaml is implicit
	if override := os.Getenv("DAYLINE_CONFIG_DIR"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath(DefaultDir())
	v.AddConfigPath(".")
	return v
}

// Load reads the config file, if any, and decodes v into a Config. A missing
// file in the search paths is not an error; a missing explicit file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	_, err := c.SlotDefinitions()
	return err
}

// Location resolves Timezone. An empty value or "Local" is the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlotDefinitions parses Slots. It returns nil when no slots are configured,
// leaving the profile's default routine in charge.
func (c *Config) SlotDefinitions() ([]domain.SlotDefinition, error) {
	if len(c.Slots) == 0 {
		return nil, nil
	}
	seen := make(map[int]bool, len(c.Slots))
	defs := make([]domain.SlotDefinition, 0, len(c.Slots))
	for i, s := range c.Slots {
		if s.Number < 1 {
			return nil, fmt.Errorf("slots[%d]: number must be positive, got %d", i, s.Number)
		}
		if seen[s.Number] {
			return nil, fmt.Errorf("slots[%d]: duplicate slot number %d", i, s.Number)
		}
		seen[s.Number] = true

		ref, err := scheduler.ParseTimeRef(s.Time)
		if err != nil {
			return nil, fmt.Errorf("slots[%d] time %q: %w", i, s.Time, err)
		}
		defs = append(defs, domain.SlotDefinition{Number: s.Number, Name: s.Name, Ref: ref})
	}
	return defs, nil
}

// Package config loads the .shiftsync configuration file.
package config

import (
	"fmt"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the tunables the calendar views read.
type Config struct {
	// WeekStart names the first column of month and week grids.
	WeekStart string `json:"weekStart"`
	// WeekViewStartHour/EndHour bound the week view's reduced timeline.
	WeekViewStartHour int `json:"weekViewStartHour"`
	WeekViewEndHour   int `json:"weekViewEndHour"`
	// SwipeThreshold is the drag distance, in cells, that triggers page
	// navigation.
	SwipeThreshold int `json:"swipeThreshold"`
	// SchedulePath points at a YAML schedule to load instead of the demo
	// data. Empty means demo data.
	SchedulePath string `json:"schedulePath"`
}

// Load reads .shiftsync(.yaml) from the working directory or home, with
// SHIFTSYNC_* environment overrides. Missing config files are fine; the
// defaults stand.
func Load() (*Config, error) {
	viper.SetDefault("weekStart", "sunday")
	viper.SetDefault("weekViewStartHour", 6)
	viper.SetDefault("weekViewEndHour", 22)
	viper.SetDefault("swipeThreshold", 5)
	viper.SetDefault("schedulePath", "")

	viper.SetConfigName(".shiftsync") // .yaml is implicit
	viper.SetEnvPrefix("SHIFTSYNC")
	viper.AutomaticEnv()

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		WeekStart:         viper.GetString("weekStart"),
		WeekViewStartHour: viper.GetInt("weekViewStartHour"),
		WeekViewEndHour:   viper.GetInt("weekViewEndHour"),
		SwipeThreshold:    viper.GetInt("swipeThreshold"),
		SchedulePath:      viper.GetString("schedulePath"),
	}
	if cfg.SchedulePath != "" {
		expanded, err := homedir.Expand(cfg.SchedulePath)
		if err != nil {
			return nil, fmt.Errorf("expanding schedulePath: %w", err)
		}
		cfg.SchedulePath = expanded
	}
	if cfg.WeekViewStartHour < 0 || cfg.WeekViewEndHour > 24 || cfg.WeekViewStartHour >= cfg.WeekViewEndHour {
		return nil, fmt.Errorf("week view hours %d-%d out of order", cfg.WeekViewStartHour, cfg.WeekViewEndHour)
	}
	return cfg, nil
}

// Weekday maps the configured week start name to a weekday. Unknown names
// fall back to Sunday.
func (c *Config) Weekday() time.Weekday {
	switch c.WeekStart {
	case "monday", "Monday":
		return time.Monday
	case "saturday", "Saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

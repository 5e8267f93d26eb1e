package config

import (
	"procompare/internal/log"
	"procompare/internal/reporting/json"
	"procompare/internal/reporting/text"
	"procompare/internal/snapshot"
)

type Config struct {
	Settings  SettingsConfig  `mapstructure:"settings"`
	Snapshots snapshot.Config `mapstructure:"snapshots" validate:"required"`

	// Processes to compare, in output order. Empty means every snapshot in
	// the directory, sorted by process id.
	Processes []string `mapstructure:"processes" validate:"omitempty,min=2"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `mapstructure:"log_level"`
	LogFormat    log.Format      `mapstructure:"log_format"`
	ReporterType string          `mapstructure:"reporter" validate:"omitempty,oneof=text json"`
	Reporter     ReporterConfigs `mapstructure:"reporter_config"`
}

type ReporterConfigs struct {
	Text *text.Config `mapstructure:"text,omitempty"`
	JSON *json.Config `mapstructure:"json,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: text.ReporterTypeText,
			Reporter: ReporterConfigs{
				Text: &text.Config{NoColor: false},
			},
		},
		Snapshots: snapshot.Config{Dir: "snapshots"},
	}
}

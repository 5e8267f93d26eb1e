package app

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"procompare/internal/config"
	"procompare/internal/core/ports"
	"procompare/internal/core/service"
	"procompare/internal/errors"
	"procompare/internal/log"
	jsonreport "procompare/internal/reporting/json"
	"procompare/internal/reporting/text"
	"procompare/internal/snapshot"
)

// BuildApplicationFromViper wires config -> logger -> snapshot source ->
// reporter -> engine.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper) (*Application, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"configuration is invalid",
			"Check the snapshot directory, reporter type, and that at least two processes are listed (or none, to compare every cached snapshot).")
	}

	logCfg := log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat}
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Infof(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	}

	source, err := snapshot.NewFileStore(cfg.Snapshots, logger)
	if err != nil {
		return nil, err
	}

	reporter, err := buildReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine, err := service.NewProcessComparisonEngine(source, reporter, logger, cfg.Processes)
	if err != nil {
		return nil, err
	}

	return NewApplication(engine, logger), nil
}

func buildReporter(cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	switch cfg.Settings.ReporterType {
	case jsonreport.ReporterTypeJSON:
		jsonCfg := jsonreport.Config{}
		if cfg.Settings.Reporter.JSON != nil {
			jsonCfg = *cfg.Settings.Reporter.JSON
		}
		return jsonreport.NewReporter(jsonCfg, logger)
	case text.ReporterTypeText, "":
		textCfg := text.Config{}
		if cfg.Settings.Reporter.Text != nil {
			textCfg = *cfg.Settings.Reporter.Text
		}
		return text.NewReporter(textCfg, logger)
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unknown reporter type %q", cfg.Settings.ReporterType),
			"Use one of: text, json.")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"procompare/internal/app"
	apperrors "procompare/internal/errors"
)

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	snapshotDir string
	processes   []string
	reporter    string
)

var rootCmd = &cobra.Command{
	Use:   "procompare",
	Short: "Compares Azure DevOps inherited process configurations side by side.",
	Long: `procompare reads already-pulled inherited process snapshots (one JSON
document per process) and produces a structurally aligned, property-level
comparison across work item types, fields, states, behaviors, and
work-item-type behavior bindings.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, buildErr := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper())
		if buildErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Application initialization failed: %v\n", buildErr)
			if appErr := (*apperrors.AppError)(nil); errors.As(buildErr, &appErr) {
				if appErr.IsUserFacing {
					fmt.Fprintf(os.Stderr, "Error Details: %s\n", appErr.Message)
					if appErr.SuggestedAction != "" {
						fmt.Fprintf(os.Stderr, "Suggestion: %s\n", appErr.SuggestedAction)
					}
				}
			}
			return buildErr
		}

		if runErr := application.Run(cmd.Context()); runErr != nil {
			userMsg, suggestion, _ := apperrors.GetUserFacingMessage(runErr)
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
			if suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
			}
			return runErr
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .procompare.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&snapshotDir, "snapshot-dir", "", "Directory holding pulled process snapshots (<processId>.json)")
	rootCmd.PersistentFlags().StringSliceVar(&processes, "processes", nil, "Process ids to compare (at least two; default: every cached snapshot)")
	rootCmd.PersistentFlags().StringVar(&reporter, "reporter", "", "Report format (text, json)")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("settings.reporter", rootCmd.PersistentFlags().Lookup("reporter"))
	viper.BindPFlag("snapshots.dir", rootCmd.PersistentFlags().Lookup("snapshot-dir"))
	viper.BindPFlag("processes", rootCmd.PersistentFlags().Lookup("processes"))

	viper.SetEnvPrefix("PROCOMPARE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".procompare")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using configuration file:", viper.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "Config file not found, using defaults and environment variables.")
		} else {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}

	return nil
}

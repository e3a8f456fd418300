package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cliently/cliently/internal/common"
	"github.com/cliently/cliently/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "cliently",
		Short: "⚖️  Client report generator for lawyers",
		Long: `cliently compiles client case information and produces general reports
for administrative purposes.

Run 'cliently intake' for a full interactive session, or use the one-shot
calculator commands (bill, suggest, days) directly.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/cliently/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "append the event log to a file instead of stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	// Add commands
	rootCmd.AddCommand(intakeCmd())
	rootCmd.AddCommand(billCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(daysCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/cliently", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("CLIENTLY")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")
	file := config.ExpandPath(viper.GetString("logging.file"))

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	switch format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	return common.SetupLogger(slogLevel, format, file)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("cliently version", "version", version)
		},
	}
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sawala-tech/lembar/internal/config"
	"github.com/sawala-tech/lembar/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global configuration loader.
	configLoader *config.Loader
	// Global configuration.
	globalConfig *config.Config
	// Configuration file path.
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lembar",
	Short: "Digitize paper inspection forms into spreadsheet reports",
	Long: `lembar turns photographed inspection forms into structured records and
assembles them into the official spreadsheet template.

It extracts GPS coordinates from photo overlays using a two-pass OCR
pipeline (original image, then an enhanced rendition), filters the results
through a geographic plausibility check, and writes one fixed-layout row
per inspection entry with an embedded photo thumbnail.

Examples:
  lembar extract photo.jpg
  lembar report entries.json --template uploads/template.xlsx
  lembar serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.PersistentFlags().GetBool("version"); v {
			ver, commit, date := version.Info()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "lembar version %s\n", ver)
			_, _ = fmt.Fprintf(out, "Commit: %s\n", commit)
			_, _ = fmt.Fprintf(out, "Date: %s\n", date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/lembar, /etc/lembar)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		var logLevel slog.Level
		if globalConfig.Verbose {
			logLevel = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				logLevel = slog.LevelDebug
			case "warn":
				logLevel = slog.LevelWarn
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelInfo
			}
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	}
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	configLoader = config.NewLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = configLoader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = configLoader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the global configuration, reloading it so CLI flags
// bound after the initial load are included.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	var cfg config.Config
	if err := configLoader.GetViper().Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling updated configuration: %v\n", err)
		return globalConfig
	}
	return &cfg
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files
	// (without extension).
	ConfigFileName = "lembar"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "LEMBAR"
)

// Loader loads configuration from files, environment variables and bound
// command-line flags, in the usual viper precedence order.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader on the global viper instance so cobra flag
// bindings are honored.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// GetViper exposes the underlying viper instance for flag binding.
func (l *Loader) GetViper() *viper.Viper { return l.v }

// Load loads configuration from the default search locations and validates
// it. A missing config file is not an error; defaults and environment
// variables apply.
func (l *Loader) Load() (*Config, error) {
	return l.load("")
}

// LoadWithFile loads configuration from an explicit file path.
func (l *Loader) LoadWithFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("empty config file path")
	}
	return l.load(path)
}

func (l *Loader) load(explicitFile string) (*Config, error) {
	l.v.SetConfigType("yaml")
	if explicitFile != "" {
		l.v.SetConfigFile(explicitFile)
	} else {
		l.v.SetConfigName(ConfigFileName)
		l.addConfigPaths()
	}

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file found in the search paths; defaults and env
		// vars apply.
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
		l.v.AddConfigPath(filepath.Join(home, ".config", "lembar"))
	}
	l.v.AddConfigPath("/etc/lembar")
}

func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("log_level", defaults.LogLevel)
	l.v.SetDefault("verbose", defaults.Verbose)

	l.v.SetDefault("geo.min_lat", defaults.Geo.MinLat)
	l.v.SetDefault("geo.max_lat", defaults.Geo.MaxLat)
	l.v.SetDefault("geo.min_lon", defaults.Geo.MinLon)
	l.v.SetDefault("geo.max_lon", defaults.Geo.MaxLon)

	l.v.SetDefault("ocr.languages", defaults.OCR.Languages)
	l.v.SetDefault("ocr.whitelist", defaults.OCR.Whitelist)
	l.v.SetDefault("ocr.page_seg_modes", defaults.OCR.PageSegModes)

	l.v.SetDefault("enhance.scale", defaults.Enhance.Scale)
	l.v.SetDefault("enhance.contrast", defaults.Enhance.Contrast)
	l.v.SetDefault("enhance.sharpen", defaults.Enhance.Sharpen)
	l.v.SetDefault("enhance.invert", defaults.Enhance.Invert)
	l.v.SetDefault("enhance.temp_dir", defaults.Enhance.TempDir)

	l.v.SetDefault("report.template_path", defaults.Report.TemplatePath)
	l.v.SetDefault("report.output_dir", defaults.Report.OutputDir)

	l.v.SetDefault("server.host", defaults.Server.Host)
	l.v.SetDefault("server.port", defaults.Server.Port)
	l.v.SetDefault("server.cors_origin", defaults.Server.CORSOrigin)
	l.v.SetDefault("server.max_upload_mb", defaults.Server.MaxUploadMB)
	l.v.SetDefault("server.timeout_sec", defaults.Server.TimeoutSec)
	l.v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huanfeng/localecsv/pkg/export"
	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/utils"
	"github.com/spf13/viper"
)

// DefaultOutput is the CSV file written when no path is configured
const DefaultOutput = "windows_locales_extended.csv"

// SourceNative selects the platform locale catalog
const SourceNative = "native"

var defaultConfig = models.Config{
	Output: models.OutputConfig{
		Path: DefaultOutput,
		Sort: true,
	},
	Catalog: models.CatalogConfig{
		Source: SourceNative,
	},
	Records: models.RecordsConfig{
		CharsetNames: export.CharsetNamesPlatform,
		MissingField: "",
	},
	Log: models.LogConfig{
		Level:  "info",
		Format: "text",
		File:   "",
		Color:  true,
	},
}

// Default returns a copy of the built-in configuration
func Default() models.Config {
	return defaultConfig
}

// Load loads configuration from file and environment
func Load(configPath string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("output.path", defaultConfig.Output.Path)
	v.SetDefault("output.sort", defaultConfig.Output.Sort)
	v.SetDefault("catalog.source", defaultConfig.Catalog.Source)
	v.SetDefault("records.charset_names", defaultConfig.Records.CharsetNames)
	v.SetDefault("records.missing_field", defaultConfig.Records.MissingField)
	v.SetDefault("log.level", defaultConfig.Log.Level)
	v.SetDefault("log.format", defaultConfig.Log.Format)
	v.SetDefault("log.file", defaultConfig.Log.File)
	v.SetDefault("log.color", defaultConfig.Log.Color)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("localecsv")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "localecsv"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error, we'll use defaults
	}

	// LOCALECSV_OUTPUT_PATH, LOCALECSV_RECORDS_CHARSET_NAMES, ...
	v.SetEnvPrefix("LOCALECSV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the exporter cannot act on
func Validate(config *models.Config) error {
	if strings.TrimSpace(config.Output.Path) == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if _, err := export.NewCharsetNamer(config.Records.CharsetNames, nil); err != nil {
		return fmt.Errorf("records.charset_names: %w", err)
	}
	if _, err := utils.ParseLogLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := utils.ParseLogFormat(config.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}

// SaveTemplate saves a configuration template
func SaveTemplate(path string) error {
	templateContent := `# localecsv configuration file

output:
  # CSV file to create (overwritten on every run)
  path: "windows_locales_extended.csv"

  # Sort rows by locale name so repeated runs produce identical files.
  # Set to false to keep the order the platform reports.
  sort: true

catalog:
  # "native" reads the operating system's locale catalog (Windows only).
  # Any other value is a snapshot file (.yaml, .toml or .json) written
  # by 'localecsv snapshot'.
  source: "native"

records:
  # How code pages are turned into character-set names:
  # - "platform": the name the operating system reports (default)
  # - "iana": the IANA registry name, e.g. windows-1252
  charset_names: "platform"

  # Text written when a descriptive field (language, country, script)
  # cannot be read. Empty by default.
  missing_field: ""

log:
  # debug, info, warn, error
  level: "info"

  # text, compact, json
  format: "text"

  # Also append diagnostics to this file
  file: ""

  # Colorize terminal diagnostics
  color: true
`

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(templateContent), 0644)
}

package models

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" json:"output"`
	Catalog CatalogConfig `mapstructure:"catalog" json:"catalog"`
	Records RecordsConfig `mapstructure:"records" json:"records"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
}

// OutputConfig controls where and how the CSV is written
type OutputConfig struct {
	Path string `mapstructure:"path" json:"path"`
	Sort bool   `mapstructure:"sort" json:"sort"` // sort rows by locale name before writing
}

// CatalogConfig selects the locale catalog source
type CatalogConfig struct {
	Source string `mapstructure:"source" json:"source"` // "native" or a snapshot file path
}

// RecordsConfig contains per-record resolution policies
type RecordsConfig struct {
	CharsetNames string `mapstructure:"charset_names" json:"charset_names"` // "platform", "iana"
	MissingField string `mapstructure:"missing_field" json:"missing_field"`
}

// LogConfig contains diagnostic logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" json:"format"` // "text", "compact", "json"
	File   string `mapstructure:"file" json:"file"`
	Color  bool   `mapstructure:"color" json:"color"`
}

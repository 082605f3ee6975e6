package config

// Config is the complete configuration for the lembar application. It
// covers all commands (extract, report, serve) and loads from configuration
// files, environment variables and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose"   yaml:"verbose"   json:"verbose"`

	// Geographic plausibility filter
	Geo GeoConfig `mapstructure:"geo" yaml:"geo" json:"geo"`

	// Recognition settings
	OCR OCRConfig `mapstructure:"ocr" yaml:"ocr" json:"ocr"`

	// Image enhancement settings
	Enhance EnhanceConfig `mapstructure:"enhance" yaml:"enhance" json:"enhance"`

	// Report generation settings
	Report ReportConfig `mapstructure:"report" yaml:"report" json:"report"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// GeoConfig bounds the plausible coordinate space for this deployment.
type GeoConfig struct {
	MinLat float64 `mapstructure:"min_lat" yaml:"min_lat" json:"min_lat"`
	MaxLat float64 `mapstructure:"max_lat" yaml:"max_lat" json:"max_lat"`
	MinLon float64 `mapstructure:"min_lon" yaml:"min_lon" json:"min_lon"`
	MaxLon float64 `mapstructure:"max_lon" yaml:"max_lon" json:"max_lon"`
}

// OCRConfig contains recognition-engine settings.
type OCRConfig struct {
	Languages    string `mapstructure:"languages"      yaml:"languages"      json:"languages"`
	Whitelist    string `mapstructure:"whitelist"      yaml:"whitelist"      json:"whitelist"`
	PageSegModes []int  `mapstructure:"page_seg_modes" yaml:"page_seg_modes" json:"page_seg_modes"`
}

// EnhanceConfig contains image-enhancement settings.
type EnhanceConfig struct {
	Scale    int     `mapstructure:"scale"    yaml:"scale"    json:"scale"`
	Contrast float64 `mapstructure:"contrast" yaml:"contrast" json:"contrast"`
	Sharpen  float64 `mapstructure:"sharpen"  yaml:"sharpen"  json:"sharpen"`
	Invert   bool    `mapstructure:"invert"   yaml:"invert"   json:"invert"`
	TempDir  string  `mapstructure:"temp_dir" yaml:"temp_dir" json:"temp_dir"`
}

// ReportConfig contains report-generation settings.
type ReportConfig struct {
	TemplatePath string       `mapstructure:"template_path" yaml:"template_path" json:"template_path"`
	OutputDir    string       `mapstructure:"output_dir"    yaml:"output_dir"    json:"output_dir"`
	Layout       LayoutConfig `mapstructure:"layout"        yaml:"layout"        json:"layout"`
}

// LayoutConfig overrides the template geometry. Zero values fall back to
// the built-in layout.
type LayoutConfig struct {
	Sheet           string `mapstructure:"sheet"            yaml:"sheet"            json:"sheet"`
	StartRow        int    `mapstructure:"start_row"        yaml:"start_row"        json:"start_row"`
	DateCell        string `mapstructure:"date_cell"        yaml:"date_cell"        json:"date_cell"`
	AssetCell       string `mapstructure:"asset_cell"       yaml:"asset_cell"       json:"asset_cell"`
	SequenceColumn  string `mapstructure:"sequence_column"  yaml:"sequence_column"  json:"sequence_column"`
	RouteColumn     string `mapstructure:"route_column"     yaml:"route_column"     json:"route_column"`
	LatitudeColumn  string `mapstructure:"latitude_column"  yaml:"latitude_column"  json:"latitude_column"`
	LongitudeColumn string `mapstructure:"longitude_column" yaml:"longitude_column" json:"longitude_column"`
	GoodColumn      string `mapstructure:"good_column"      yaml:"good_column"      json:"good_column"`
	MediumColumn    string `mapstructure:"medium_column"    yaml:"medium_column"    json:"medium_column"`
	BadColumn       string `mapstructure:"bad_column"       yaml:"bad_column"       json:"bad_column"`
	NotesColumn     string `mapstructure:"notes_column"     yaml:"notes_column"     json:"notes_column"`
	PhotoColumn     string `mapstructure:"photo_column"     yaml:"photo_column"     json:"photo_column"`
	Marker          string `mapstructure:"marker"           yaml:"marker"           json:"marker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host"             yaml:"host"             json:"host"`
	Port            int    `mapstructure:"port"             yaml:"port"             json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin"      yaml:"cors_origin"      json:"cors_origin"`
	MaxUploadMB     int64  `mapstructure:"max_upload_mb"    yaml:"max_upload_mb"    json:"max_upload_mb"`
	TimeoutSec      int    `mapstructure:"timeout_sec"      yaml:"timeout_sec"      json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

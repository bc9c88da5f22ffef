// Package config loads the scriptpdf YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-scriptpdf/internal/layout"
	"github.com/alnah/go-scriptpdf/internal/render"
	"github.com/alnah/go-scriptpdf/internal/script"
	"github.com/alnah/go-scriptpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength      = 2048
	MaxPathLength     = 4096
	MaxFontNameLength = 100
	MaxNameLength     = 64
	MaxColors         = 8
	MaxSheets         = 100
)

// configDirName is the directory searched under the user config dir.
const configDirName = "scriptpdf"

// Config holds all configuration for sheet generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Sheet   SheetConfig   `yaml:"sheet"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default directory searched for scripts
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the script
}

// SheetConfig mirrors the sheet options. Pointer booleans distinguish
// "unset" from false so defaults of true survive a partial file.
type SheetConfig struct {
	Copies              int              `yaml:"numberOfCharacterSheets"`
	Overleaf            string           `yaml:"overleaf"`
	Teensy              bool             `yaml:"teensy"`
	NightSheet          *bool            `yaml:"showNightSheet"`
	Colors              []string         `yaml:"colors"`
	Logo                string           `yaml:"logo"`
	ShowLogo            *bool            `yaml:"showLogo"`
	ShowTitle           *bool            `yaml:"showTitle"`
	ShowAuthor          *bool            `yaml:"showAuthor"`
	ShowJinxes          *bool            `yaml:"showJinxes"`
	UseOldJinxes        bool             `yaml:"useOldJinxes"`
	ShowSwirls          *bool            `yaml:"showSwirls"`
	IncludeMargins      bool             `yaml:"includeMargins"`
	SolidTitle          bool             `yaml:"solidTitle"`
	Appearance          string           `yaml:"appearance"`
	IconScale           float64          `yaml:"iconScale"`
	FormatMinorWords    bool             `yaml:"formatMinorWords"`
	DisplayNightOrder   *bool            `yaml:"displayNightOrder"`
	DisplayPlayerCounts *bool            `yaml:"displayPlayerCounts"`
	InlineJinxIcons     string           `yaml:"inlineJinxIcons"`
	TitleFont           string           `yaml:"titleFont"`
	TitleLetterSpacing  *float64         `yaml:"titleLetterSpacing"`
	TitleWordSpacing    float64          `yaml:"titleWordSpacing"`
	CustomFontURL       string           `yaml:"customFontUrl"`
	Dimensions          DimensionsConfig `yaml:"dimensions"`
}

// DimensionsConfig is the physical sheet size in millimetres. Zero values
// keep the defaults.
type DimensionsConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
	Bleed  float64 `yaml:"bleed"`
}

// RenderConfig defines how sheets are rendered.
type RenderConfig struct {
	AssetBase       string `yaml:"assetBase"`       // Directory or URL holding images/ and fonts/
	AssetPath       string `yaml:"assetPath"`       // Directory overriding styles/ and templates/
	IconURLTemplate string `yaml:"iconUrlTemplate"` // Must contain {id}
	Style           string `yaml:"style"`           // Style name (default: "default")
	Template        string `yaml:"template"`        // Template set name (default: "default")
	CSS             string `yaml:"css"`             // Extra CSS file appended last
	Catalog         string `yaml:"catalog"`         // Character catalog JSON file
	Timeout         string `yaml:"timeout"`         // Go duration, e.g. "45s"
	Workers         int    `yaml:"workers"`         // 0 = auto
}

// LoggingConfig defines logging options.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`   // Rotated log file, empty = stderr only
}

// TimeoutDuration parses Render.Timeout. Zero means unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout: must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks enumerations, ranges and field lengths. Called by
// LoadConfig, but available to callers that build a Config by hand.
func (c *Config) Validate() error {
	s := c.Sheet

	if s.Copies < 0 || s.Copies > MaxSheets {
		return fmt.Errorf("%w: sheet.numberOfCharacterSheets: must be between 1 and %d, got %d", ErrInvalidValue, MaxSheets, s.Copies)
	}
	if _, ok := layout.ParseOverleaf(s.Overleaf); !ok {
		return fmt.Errorf("%w: sheet.overleaf: %q (must be none, backingSheet or infoSheet)", ErrInvalidValue, s.Overleaf)
	}
	if s.Appearance != "" && !render.IsAppearance(s.Appearance) {
		return fmt.Errorf("%w: sheet.appearance: %q (must be normal, compact, super-compact or mega-compact)", ErrInvalidValue, s.Appearance)
	}
	if _, ok := script.ParseJinxIconMode(s.InlineJinxIcons); !ok {
		return fmt.Errorf("%w: sheet.inlineJinxIcons: %q (must be none, primary or both)", ErrInvalidValue, s.InlineJinxIcons)
	}
	if len(s.Colors) > MaxColors {
		return fmt.Errorf("%w: sheet.colors: at most %d colours, got %d", ErrInvalidValue, MaxColors, len(s.Colors))
	}
	for i, col := range s.Colors {
		if !render.ValidColor(col) {
			return fmt.Errorf("%w: sheet.colors[%d]: %q is not a hex colour", ErrInvalidValue, i, col)
		}
	}
	if s.IconScale < 0 {
		return fmt.Errorf("%w: sheet.iconScale: must not be negative", ErrInvalidValue)
	}
	d := s.Dimensions
	if d.Width < 0 || d.Height < 0 || d.Margin < 0 || d.Bleed < 0 {
		return fmt.Errorf("%w: sheet.dimensions: values must not be negative", ErrInvalidValue)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"sheet.logo", s.Logo, MaxURLLength},
		{"sheet.titleFont", s.TitleFont, MaxFontNameLength},
		{"sheet.customFontUrl", s.CustomFontURL, MaxURLLength},
		{"render.assetBase", c.Render.AssetBase, MaxURLLength},
		{"render.assetPath", c.Render.AssetPath, MaxPathLength},
		{"render.iconUrlTemplate", c.Render.IconURLTemplate, MaxURLLength},
		{"render.style", c.Render.Style, MaxNameLength},
		{"render.template", c.Render.Template, MaxNameLength},
		{"render.css", c.Render.CSS, MaxPathLength},
		{"render.catalog", c.Render.Catalog, MaxPathLength},
		{"logging.file", c.Logging.File, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if t := c.Render.IconURLTemplate; t != "" && !strings.Contains(t, "{id}") {
		return fmt.Errorf("%w: render.iconUrlTemplate: must contain {id}", ErrInvalidValue)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers: must not be negative", ErrInvalidValue)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level: %q", ErrInvalidValue, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format: %q", ErrInvalidValue, c.Logging.Format)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: every option keeps the
// library default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name: name.yaml then
// name.yml, in the current directory then ~/.config/scriptpdf/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

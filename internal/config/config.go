package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/hpicker/internal/logging"
	"github.com/rshade/hpicker/internal/picker"
	"github.com/rshade/hpicker/internal/tui"
)

// Config file locations and environment overrides.
const (
	configDirName  = ".hpicker"
	configFileName = "config.yaml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "HPICKER_CONFIG"
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "HPICKER_LOG_LEVEL"
	// EnvPaddingScale overrides picker.padding_scale.
	EnvPaddingScale = "HPICKER_PADDING_SCALE"
)

// CurrentVersion is written by Save and New.
const CurrentVersion = "1.0.0"

// supportedVersions is the constraint a config file's version must satisfy.
const supportedVersions = "^1"

// Sentinel validation errors.
var (
	ErrInvalidPaddingScale      = errors.New("padding_scale must be a non-negative number")
	ErrInvalidCellHeight        = errors.New("cell_height must not be negative")
	ErrInvalidLogFormat         = errors.New("logging.format must be json or console")
	ErrUnsupportedConfigVersion = errors.New("unsupported config version")
)

// Config is the hpicker configuration file.
type Config struct {
	Version         string                `yaml:"version"`
	Picker          PickerConfig          `yaml:"picker"`
	TitleAttributes TitleAttributesConfig `yaml:"title_attributes"`
	Logging         LoggingConfig         `yaml:"logging"`

	// path is where the config was loaded from and where Save writes.
	path string
}

// PickerConfig holds the selection engine and strip options.
type PickerConfig struct {
	PaddingScale                 float64 `yaml:"padding_scale"`
	ShowAllItems                 bool    `yaml:"show_all_items"`
	AllowSelectionWhileScrolling bool    `yaml:"allow_selection_while_scrolling"`
	NotifyUnchanged              bool    `yaml:"notify_unchanged"`
	// Deprecated: request an initial selection instead.
	AutoSelectFirst bool `yaml:"auto_select_first,omitempty"`
	CellHeight      int  `yaml:"cell_height"`
}

// TitleAttributeConfig is the look of a cell title.
type TitleAttributeConfig struct {
	Color     string `yaml:"color,omitempty"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

// TitleAttributesConfig holds the selected and deselected title looks.
type TitleAttributesConfig struct {
	Selected   TitleAttributeConfig `yaml:"selected"`
	Deselected TitleAttributeConfig `yaml:"deselected"`
}

// LoggingConfig configures the log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns the default configuration.
func New() *Config {
	attrs := tui.DefaultTitleAttributes()
	return &Config{
		Version: CurrentVersion,
		Picker: PickerConfig{
			PaddingScale: picker.DefaultPaddingScale,
			CellHeight:   tui.DefaultCellHeight,
		},
		TitleAttributes: TitleAttributesConfig{
			Selected:   fromTitleAttribute(attrs.Selected),
			Deselected: fromTitleAttribute(attrs.Deselected),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// ResolvePath determines the config file location. It checks (in order):
//  1. flagValue (--config CLI flag)
//  2. HPICKER_CONFIG env var
//  3. ~/.hpicker/config.yaml
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load reads the config at path over the defaults, applies environment overrides
// and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	cfg.path = path

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	} else if err = ShallowMergeYAML(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns where the config is loaded from and saved to.
func (c *Config) Path() string {
	return c.path
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.path = path
}

// ApplyEnv applies environment variable overrides.
func (c *Config) ApplyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}

	if raw := os.Getenv(EnvPaddingScale); raw != "" {
		scale, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvPaddingScale, raw, ErrInvalidPaddingScale)
		}
		c.Picker.PaddingScale = scale
	}
	return nil
}

// Validate checks the configuration for values the picker cannot use.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if err := ValidatePaddingScale(c.Picker.PaddingScale); err != nil {
		return err
	}
	if c.Picker.CellHeight < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCellHeight, c.Picker.CellHeight)
	}

	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// ValidatePaddingScale rejects negative and non-finite padding scales.
func ValidatePaddingScale(scale float64) error {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPaddingScale, scale)
	}
	return nil
}

func validateVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedConfigVersion, version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedConfigVersion, v, supportedVersions)
	}
	return nil
}

// Save writes the config to its path, creating the directory if needed.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config path not set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.path, err)
	}
	return nil
}

// ToOptions converts the picker section to engine options.
func (c *Config) ToOptions() picker.Options {
	return picker.Options{
		PaddingScale:                 c.Picker.PaddingScale,
		ShowAllItems:                 c.Picker.ShowAllItems,
		AllowSelectionWhileScrolling: c.Picker.AllowSelectionWhileScrolling,
		NotifyUnchanged:              c.Picker.NotifyUnchanged,
		AutoSelectFirst:              c.Picker.AutoSelectFirst,
	}
}

// ToTitleAttributes converts the title_attributes section for the terminal host.
func (c *Config) ToTitleAttributes() tui.TitleAttributes {
	return tui.TitleAttributes{
		Selected:   c.TitleAttributes.Selected.toTitleAttribute(),
		Deselected: c.TitleAttributes.Deselected.toTitleAttribute(),
	}
}

// ToLoggingConfig converts the logging section. Without a configured file, output
// goes to stderr.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	out := logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Output: logging.OutputStderr,
		File:   l.File,
	}
	if l.File != "" {
		out.Output = logging.OutputFile
	}
	return out
}

func (a TitleAttributeConfig) toTitleAttribute() tui.TitleAttribute {
	return tui.TitleAttribute{
		Color:     picker.Color(a.Color),
		Bold:      a.Bold,
		Italic:    a.Italic,
		Underline: a.Underline,
	}
}

func fromTitleAttribute(a tui.TitleAttribute) TitleAttributeConfig {
	return TitleAttributeConfig{
		Color:     string(a.Color),
		Bold:      a.Bold,
		Italic:    a.Italic,
		Underline: a.Underline,
	}
}

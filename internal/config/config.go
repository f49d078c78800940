package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"

	"github.com/alnah/go-cbeautify/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidSelector = errors.New("invalid CSS selector")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxNameLength     = 64   // Style, stylesheet and lexer names
	MaxSelectorLength = 512  // Generator selectors are short
	MaxWorkers        = 64
)

// Defaults matching the layout produced by makeinfo for the GNU C manual.
const (
	DefaultInputDir       = "gnu-c-manual/c.html.d"
	DefaultOutputDir      = "docs"
	DefaultCSSDir         = "css"
	DefaultStylesheet     = "gnu-c"
	DefaultHighlightStyle = "pygments"
	DefaultLexer          = "c"
	DefaultCodeSelector   = "pre.example-preformatted"
	DefaultNavSelector    = "div.nav-panel, div.header"
)

// Config holds all configuration for a beautification run.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	CSS       CSSConfig       `yaml:"css"`
	Highlight HighlightConfig `yaml:"highlight"`
	Navbar    NavbarConfig    `yaml:"navbar"`
	Icon      IconConfig      `yaml:"icon"`
	Assets    AssetsConfig    `yaml:"assets"`
	Workers   int             `yaml:"workers"` // 0 = auto
}

// InputConfig defines where generated pages are read from.
type InputConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where beautified pages are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Same as input dir = in place
}

// CSSConfig defines stylesheet options.
type CSSConfig struct {
	Dir        string `yaml:"dir"`        // Target of --css
	Stylesheet string `yaml:"stylesheet"` // Name of style in internal/assets/styles/
}

// HighlightConfig defines code block highlighting.
type HighlightConfig struct {
	Enabled  *bool  `yaml:"enabled"`
	Style    string `yaml:"style"` // chroma style name
	Lexer    string `yaml:"lexer"`
	Selector string `yaml:"selector"`
}

// NavbarConfig defines navigation bar rewriting.
type NavbarConfig struct {
	Enabled  *bool  `yaml:"enabled"`
	Selector string `yaml:"selector"`
}

// IconConfig defines favicon bundling.
type IconConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// IsEnabled reports whether highlighting is on. Unset means on.
func (h HighlightConfig) IsEnabled() bool { return enabledOrDefault(h.Enabled) }

// IsEnabled reports whether navbar rewriting is on. Unset means on.
func (n NavbarConfig) IsEnabled() bool { return enabledOrDefault(n.Enabled) }

// IsEnabled reports whether the favicon is bundled and linked. Unset means on.
func (i IconConfig) IsEnabled() bool { return enabledOrDefault(i.Enabled) }

func enabledOrDefault(b *bool) bool {
	return b == nil || *b
}

// Validate checks field lengths, selector syntax and worker bounds.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct{ field, value string }{
		{"input.dir", c.Input.Dir},
		{"output.dir", c.Output.Dir},
		{"css.dir", c.CSS.Dir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	names := []struct{ field, value string }{
		{"css.stylesheet", c.CSS.Stylesheet},
		{"highlight.style", c.Highlight.Style},
		{"highlight.lexer", c.Highlight.Lexer},
	}
	for _, n := range names {
		if err := validateFieldLength(n.field, n.value, MaxNameLength); err != nil {
			return err
		}
	}

	if err := validateSelector("highlight.selector", c.Highlight.Selector); err != nil {
		return err
	}
	if err := validateSelector("navbar.selector", c.Navbar.Selector); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
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

// validateSelector checks length and that a non-empty selector group compiles.
func validateSelector(fieldName, value string) error {
	if err := validateFieldLength(fieldName, value, MaxSelectorLength); err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	if _, err := cascadia.ParseGroup(value); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSelector, fieldName, value, err)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with their default values.
// Enabled flags are left untouched: nil already means on.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Input.Dir, DefaultInputDir)
	setDefault(&c.Output.Dir, DefaultOutputDir)
	setDefault(&c.CSS.Dir, DefaultCSSDir)
	setDefault(&c.CSS.Stylesheet, DefaultStylesheet)
	setDefault(&c.Highlight.Style, DefaultHighlightStyle)
	setDefault(&c.Highlight.Lexer, DefaultLexer)
	setDefault(&c.Highlight.Selector, DefaultCodeSelector)
	setDefault(&c.Navbar.Selector, DefaultNavSelector)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
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
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/cbeautify/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "cbeautify", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

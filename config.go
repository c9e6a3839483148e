package flow

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory when none is given.
const DefaultConfigFile = "flow.toml"

// Text estimator names accepted in [text].estimator.
const (
	EstimatorCell = "cell"
	EstimatorFace = "face"
)

// Config represents the flow.toml configuration file.
type Config struct {
	Text     TextConfig     `toml:"text"`
	Viewport ViewportConfig `toml:"viewport"`
	Debug    DebugConfig    `toml:"debug"`
}

// TextConfig selects and tunes the text estimator.
type TextConfig struct {
	Estimator  string  `toml:"estimator"`
	FontSize   float64 `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	// Cell advance as a multiple of the font size (cell estimator only)
	CharWidth float64 `toml:"char_width"`
}

// ViewportConfig is the container size used when a document declares none.
type ViewportConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DebugConfig controls engine tracing.
type DebugConfig struct {
	LogFile string `toml:"log_file"`
	Level   string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Text: TextConfig{
			Estimator:  EstimatorCell,
			FontSize:   DefaultFontSize,
			LineHeight: DefaultLineHeight,
			CharWidth:  DefaultCharWidth,
		},
		Viewport: ViewportConfig{Width: 800, Height: 600},
		Debug:    DebugConfig{Level: "info"},
	}
}

// LoadConfig reads path over the defaults. An empty path tries
// DefaultConfigFile and returns the defaults when it does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Text.Estimator {
	case EstimatorCell, EstimatorFace:
	default:
		return fmt.Errorf("config: text.estimator must be %q or %q, got %q", EstimatorCell, EstimatorFace, c.Text.Estimator)
	}
	if c.Text.FontSize < 0 || c.Text.LineHeight < 0 || c.Text.CharWidth < 0 {
		return errors.New("config: text metrics must not be negative")
	}
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return errors.New("config: viewport must not be negative")
	}
	return nil
}

// ViewportSize returns the configured container size.
func (c Config) ViewportSize() Size {
	return NewSize(c.Viewport.Width, c.Viewport.Height)
}

// Estimator builds the configured text estimator.
func (c Config) Estimator() Estimator {
	if c.Text.Estimator == EstimatorFace {
		return NewBasicFaceEstimator()
	}
	return CellEstimator{CharWidth: c.Text.CharWidth}
}

// EngineOptions returns the engine options the configuration implies.
func (c Config) EngineOptions() []EngineOption {
	return []EngineOption{
		WithEstimator(c.Estimator()),
		WithTextDefaults(TextStyle{FontSize: c.Text.FontSize, LineHeight: c.Text.LineHeight}),
	}
}

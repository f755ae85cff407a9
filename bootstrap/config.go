package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	notation "github.com/gogpu/gg-notation"
)

// Config holds the literals the bootstrap draws with.
type Config struct {
	// CanvasID is the id of the canvas element to draw into.
	CanvasID string `yaml:"canvas_id"`
	// Backend is "canvas" or "svg".
	Backend string `yaml:"backend"`

	Font FontConfig `yaml:"font"`
	// Background is the context's background fill style.
	Background string `yaml:"background"`

	Stave StaveConfig `yaml:"stave"`
	// Clef is the clef attached first.
	Clef string `yaml:"clef"`
	// TimeSignature is attached after the clef.
	TimeSignature string `yaml:"time_signature"`
}

// FontConfig is the (family, size, style) triple passed to SetFont.
type FontConfig struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
	Style  string  `yaml:"style"`
}

// StaveConfig places the stave.
type StaveConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// DefaultConfig returns the configuration of the stock page: a treble 4/4
// stave at (10, 40), 500 px wide, on musicCanvas.
func DefaultConfig() Config {
	return Config{
		CanvasID: "musicCanvas",
		Backend:  notation.BackendCanvas.String(),
		Font: FontConfig{
			Family: "Arial",
			Size:   10,
			Style:  "",
		},
		Background:    "#eed",
		Stave:         StaveConfig{X: 10, Y: 40, Width: 500},
		Clef:          "treble",
		TimeSignature: "4/4",
	}
}

// Validate checks every field without drawing anything.
func (c Config) Validate() error {
	var errs []error
	if c.CanvasID == "" {
		errs = append(errs, errors.New("canvas_id is required"))
	}
	if _, err := notation.ParseBackend(c.Backend); err != nil {
		errs = append(errs, err)
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size must be positive, got %g", c.Font.Size))
	}
	if _, err := notation.ParseColor(c.Background); err != nil {
		errs = append(errs, err)
	}
	if c.Stave.Width <= 0 {
		errs = append(errs, fmt.Errorf("stave.width must be positive, got %g", c.Stave.Width))
	}
	if _, err := notation.ParseClef(c.Clef); err != nil {
		errs = append(errs, err)
	}
	if _, err := notation.ParseTimeSignature(c.TimeSignature); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("bootstrap: invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bootstrap: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bootstrap: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: marshal config: %w", err)
	}
	return data, nil
}

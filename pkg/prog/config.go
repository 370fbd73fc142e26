package prog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the content of a config file given with -config. Command-line
// flags take precedence over it.
type Config struct {
	// Significant digits for rendering doubles; 0 for shortest.
	Precision *int `yaml:"precision"`
	// Path to the cell database.
	DB string `yaml:"db"`
}

// LoadConfig reads a YAML config file. Unknown keys are errors.
func LoadConfig(fname string) (*Config, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return &cfg, nil
}

func (cfg *Config) apply(f *Flags) {
	if f.Precision < 0 && cfg.Precision != nil {
		f.Precision = *cfg.Precision
	}
	if f.DB == "" {
		f.DB = cfg.DB
	}
}

// Package config loads the batch and server settings of the generator tools
// from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Batch describes a grid of instances to generate. Every combination of the
// list fields is generated Count times.
type Batch struct {
	Sizes       []int  `toml:"sizes" yaml:"sizes" validate:"required,min=1,dive,min=1,max=1002000"`
	RootPos     []int  `toml:"root_pos" yaml:"root_pos" validate:"required,min=1,dive,min=1,max=3"`
	CustPos     []int  `toml:"cust_pos" yaml:"cust_pos" validate:"required,min=1,dive,min=1,max=3"`
	DemandTypes []int  `toml:"demand_types" yaml:"demand_types" validate:"required,min=1,dive,min=1,max=7"`
	RouteSizes  []int  `toml:"route_sizes" yaml:"route_sizes" validate:"required,min=1,dive,min=1,max=6"`
	Count       int    `toml:"count" yaml:"count" validate:"min=1"`
	BaseSeed    int64  `toml:"base_seed" yaml:"base_seed"`
	Stream      string `toml:"stream" yaml:"stream" validate:"omitempty,oneof=python go"`
	Workers     int    `toml:"workers" yaml:"workers" validate:"min=1,max=1024"`
	OutDir      string `toml:"out_dir" yaml:"out_dir" validate:"required"`
	JSON        bool   `toml:"json" yaml:"json"`
	Compress    bool   `toml:"compress" yaml:"compress"`
	MetricsFile string `toml:"metrics_file" yaml:"metrics_file"`
}

// Server configures the HTTP interface.
type Server struct {
	Addr   string `toml:"addr" yaml:"addr" validate:"required"`
	Stream string `toml:"stream" yaml:"stream" validate:"omitempty,oneof=python go"`
	// MaxN caps the instance size a single request may ask for.
	MaxN int `toml:"max_n" yaml:"max_n" validate:"min=1,max=1002000"`
}

type Config struct {
	Batch  Batch  `toml:"batch" yaml:"batch"`
	Server Server `toml:"server" yaml:"server"`
}

var validate = validator.New()

// Default reproduces the XML100 layout: 100 customers, every categorical
// combination, one instance each.
func Default() *Config {
	return &Config{
		Batch: Batch{
			Sizes:       []int{100},
			RootPos:     []int{1, 2, 3},
			CustPos:     []int{1, 2, 3},
			DemandTypes: []int{1, 2, 3, 4, 5, 6, 7},
			RouteSizes:  []int{1, 2, 3, 4, 5, 6},
			Count:       1,
			BaseSeed:    1,
			Stream:      "python",
			Workers:     4,
			OutDir:      ".",
		},
		Server: Server{
			Addr:   ":8080",
			Stream: "python",
			MaxN:   10000,
		},
	}
}

// Load reads path, picking the decoder from its extension (.toml, .yaml, .yml),
// on top of Default. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags of both sections.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Validate checks a batch section on its own, e.g. one assembled from flags.
func (b *Batch) Validate() error {
	if err := validate.Struct(b); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

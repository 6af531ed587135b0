// Package config handles qrstl configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/voxelsplace/qrstl/qrstl"
)

// Config holds all generator settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds the solid dimensions, in model units (usually mm).
type MeshConfig struct {
	PixelSize      float32 `yaml:"pixel_size"`
	BaseSize       float32 `yaml:"base_size"`
	BaseHeight     float32 `yaml:"base_height"`
	ComputeNormals bool    `yaml:"compute_normals"`
}

// OutputConfig holds the mesh file format settings.
type OutputConfig struct {
	Format      string `yaml:"format"`      // stl-binary, stl-ascii, glb
	Compression string `yaml:"compression"` // none, gzip, zstd
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock generator settings.
func Default() *Config {
	d := qrstl.DefaultMeshOptions()
	return &Config{
		Mesh: MeshConfig{
			PixelSize:  d.PixelSize,
			BaseSize:   d.BaseSize,
			BaseHeight: d.BaseHeight,
		},
		Output: OutputConfig{
			Format:      qrstl.FormatSTLBinary.String(),
			Compression: qrstl.CompNone.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFile reads a YAML file over the defaults. Keys missing from the file
// keep their default value.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// MeshOptions converts the mesh section for the generator.
func (c *Config) MeshOptions() qrstl.MeshOptions {
	return qrstl.MeshOptions{
		PixelSize:      c.Mesh.PixelSize,
		BaseSize:       c.Mesh.BaseSize,
		BaseHeight:     c.Mesh.BaseHeight,
		ComputeNormals: c.Mesh.ComputeNormals,
	}
}

// Validate checks mesh sizes and output names.
func (c *Config) Validate() error {
	if err := c.MeshOptions().Validate(); err != nil {
		return err
	}
	if _, err := qrstl.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := qrstl.ParseCompression(c.Output.Compression); err != nil {
		return err
	}
	return nil
}

// Format returns the parsed output format. Call Validate first.
func (c *Config) Format() qrstl.Format {
	f, _ := qrstl.ParseFormat(c.Output.Format)
	return f
}

// Compression returns the parsed output codec. Call Validate first.
func (c *Config) Compression() qrstl.Compression {
	comp, _ := qrstl.ParseCompression(c.Output.Compression)
	return comp
}

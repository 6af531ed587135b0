package config

import (
	"flag"
)

// Flags are the command line overrides shared by the mesh-producing
// commands. Only flags given explicitly override the config file.
type Flags struct {
	Config      *string
	PixelSize   *float64
	BaseSize    *float64
	BaseHeight  *float64
	Normals     *bool
	Format      *string
	Compression *string
	LogLevel    *string
	LogFile     *string

	fs *flag.FlagSet
}

// RegisterFlags adds the shared flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	return &Flags{
		Config:      fs.String("config", "", "Path to config file"),
		PixelSize:   fs.Float64("pixel-size", float64(d.Mesh.PixelSize), "Edge length of one QR module"),
		BaseSize:    fs.Float64("base-size", float64(d.Mesh.BaseSize), "Width of the border around the code"),
		BaseHeight:  fs.Float64("base-height", float64(d.Mesh.BaseHeight), "Height of the base under the relief"),
		Normals:     fs.Bool("normals", false, "Write facet normals instead of zero normals"),
		Format:      fs.String("format", "", "Output format: stl-binary, stl-ascii, glb"),
		Compression: fs.String("compress", "", "Output compression: none, gzip, zstd"),
		LogLevel:    fs.String("log-level", "", "Log level: debug, info, warn, error"),
		LogFile:     fs.String("log-file", "", "Also log to this file"),
		fs:          fs,
	}
}

// Load builds the config with priority: defaults < file < flags.
// Call after fs.Parse.
func (f *Flags) Load() (*Config, error) {
	cfg := Default()
	if *f.Config != "" {
		var err error
		if cfg, err = LoadFile(*f.Config); err != nil {
			return nil, err
		}
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply copies the flags that were given explicitly on the command line.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "pixel-size":
			cfg.Mesh.PixelSize = float32(*f.PixelSize)
		case "base-size":
			cfg.Mesh.BaseSize = float32(*f.BaseSize)
		case "base-height":
			cfg.Mesh.BaseHeight = float32(*f.BaseHeight)
		case "normals":
			cfg.Mesh.ComputeNormals = *f.Normals
		case "format":
			cfg.Output.Format = *f.Format
		case "compress":
			cfg.Output.Compression = *f.Compression
		case "log-level":
			cfg.Logging.Level = *f.LogLevel
		case "log-file":
			cfg.Logging.LogFile = *f.LogFile
		}
	})
}

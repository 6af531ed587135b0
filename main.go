//go:build !(js && wasm)

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/voxelsplace/qrstl/config"
	"github.com/voxelsplace/qrstl/logger"
	"github.com/voxelsplace/qrstl/utils"
)

func usage() {
	fmt.Println(`qrstl - turn text into a 3D printable QR code

Usage:
  qrstl <command> [options]

Commands:
  generate [-i input] -o output [mesh options]   (encode text, stdin if no -i)
  bitmap -i bitmap.txt -o output [mesh options]  (extrude a '#'/'.' text bitmap)
  matrix [-i input]                              (print the QR matrix as a text bitmap)
  noise -rows N -cols N -fill P [-seed S] -o output [mesh options]
  inspect file.stl[.gz|.zst]                     (triangle count, bounds, fingerprint)
  config -o config.yaml                          (write the default config)

Mesh options:
  -pixel-size 2.5 -base-size 5 -base-height 3 -normals
  -format stl-binary|stl-ascii|glb -compress none|gzip|zstd
  -config file.yaml -log-level info -log-file path

Use -o - to write the mesh to stdout.`)
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	logger.Sync()
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// meshCommand parses the flags of a mesh-producing command and sets up
// logging. extra registers command specific flags.
func meshCommand(name string, args []string, extra func(fs *flag.FlagSet)) (*config.Config, string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	output := fs.String("o", "", "Output file path (- for stdout)")
	flags := config.RegisterFlags(fs)
	if extra != nil {
		extra(fs)
	}
	fs.Parse(args)

	cfg, err := flags.Load()
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(err)
	}
	if *output == "" {
		fmt.Fprintf(os.Stderr, "Usage: qrstl %s ... -o <output>\n", name)
		os.Exit(1)
	}
	return cfg, *output
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate", "gen":
		var input *string
		cfg, output := meshCommand(command, args, func(fs *flag.FlagSet) {
			input = fs.String("i", "", "Input file (default stdin)")
		})
		err = utils.RunGenerate(*input, output, cfg)
	case "bitmap":
		var input *string
		cfg, output := meshCommand(command, args, func(fs *flag.FlagSet) {
			input = fs.String("i", "", "Bitmap file (default stdin)")
		})
		err = utils.RunBitmap(*input, output, cfg)
	case "noise":
		var rows, cols *int
		var fill *float64
		var seed *int64
		cfg, output := meshCommand(command, args, func(fs *flag.FlagSet) {
			rows = fs.Int("rows", 21, "Bitmap rows")
			cols = fs.Int("cols", 21, "Bitmap columns")
			fill = fs.Float64("fill", 50, "Percentage of modules switched on")
			seed = fs.Int64("seed", 0, "Random seed (0 = time based)")
		})
		err = utils.RunNoise(*rows, *cols, *fill, *seed, output, cfg)
	case "matrix":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		input := fs.String("i", "", "Input file (default stdin)")
		fs.Parse(args)
		err = utils.RunMatrix(*input, os.Stdout)
	case "inspect":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: qrstl inspect <file.stl>")
			os.Exit(1)
		}
		err = utils.RunInspect(args[0], os.Stdout)
	case "config":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		output := fs.String("o", "config.yaml", "Config file to write")
		fs.Parse(args)
		err = config.Default().SaveTo(*output)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fail(err)
	}
	logger.Sync()
}

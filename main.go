package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"asciiatlas/driver"
	"asciiatlas/raster"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const defaultTarget = "dummy.txt"

var errInvalidArguments = errors.New("invalid arguments")

type CLI struct {
	Files    []string `help:"Input file(s), repeat the flag for more. Images when composing, the atlas when extracting." placeholder:"FILE" required:"" sep:"none"`
	Write    bool     `short:"w" help:"Compose all input images into one atlas." xor:"mode"`
	Choose   int      `short:"c" help:"Zero-based index of the panel to extract from the atlas." default:"0" placeholder:"N" xor:"mode"`
	Target   []string `help:"Output file(s), repeat the flag for more. Each receives the full result (default: ${default_target})." placeholder:"FILE" sep:"none"`
	Width    int      `help:"Panel width in characters when composing." default:"100" env:"ASCIIATLAS_WIDTH" group:"compose"`
	Filter   string   `help:"Resize filter when composing." enum:"catmullrom,bilinear,lanczos" default:"catmullrom" env:"ASCIIATLAS_FILTER" group:"compose"`
	Workers  int      `help:"Images decoded in parallel when composing, 0 for one per CPU." default:"1" env:"ASCIIATLAS_WORKERS" group:"compose"`
	LogLevel string   `help:"Log level." enum:"debug,info,warn,error" default:"warn" env:"ASCIIATLAS_LOG_LEVEL"`

	filter raster.Filter `kong:"-"`
}

func (c *CLI) Validate(kctx *kong.Context) error {
	if c.Choose < 0 {
		return fmt.Errorf("%w: invalid panel index: %d", errInvalidArguments, c.Choose)
	}
	if c.Width < 1 {
		return fmt.Errorf("%w: invalid width: %d", errInvalidArguments, c.Width)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: invalid number of workers: %d", errInvalidArguments, c.Workers)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("%w: no input files", errInvalidArguments)
	}
	if len(c.Target) == 0 {
		c.Target = []string{defaultTarget}
	}

	var err error
	if c.filter, err = raster.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("%w: %w", errInvalidArguments, err)
	}
	return nil
}

// Run dispatches to the compose or the extract entry point.
func (c *CLI) Run(logger *slog.Logger) error {
	if c.Write {
		return driver.Compose(logger, driver.ComposeParams{
			Files:   c.Files,
			Targets: c.Target,
			Width:   c.Width,
			Filter:  c.filter,
			Workers: c.Workers,
		})
	}

	if len(c.Files) > 1 {
		logger.Warn("extract reads only the first file", "ignored", c.Files[1:])
	}
	return driver.Extract(logger, driver.ExtractParams{
		Source:  c.Files[0],
		Index:   c.Choose,
		Targets: c.Target,
	})
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("asciiatlas"),
		kong.Description("Render images as ASCII art side by side in an atlas, or pull one panel back out of an atlas."),
		kong.Vars{"default_target": defaultTarget},
	}, options...)
	return kong.New(cli, options...)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// parseArgs parses args into cli. Every parse or validation failure is
// reported as errInvalidArguments.
func parseArgs(cli *CLI, args []string) error {
	parser, err := newParser(cli)
	if err != nil {
		return fmt.Errorf("could not build command line parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		if !errors.Is(err, errInvalidArguments) {
			err = fmt.Errorf("%w: %w", errInvalidArguments, err)
		}
		return err
	}
	return nil
}

// exitCode maps a parse or run error to the process exit status: 2 for
// invalid arguments, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalidArguments):
		return 2
	default:
		return 1
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	var cli CLI
	if err := parseArgs(&cli, os.Args[1:]); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(exitCode(err))
	}

	logger := newLogger(cli.LogLevel)
	slog.SetDefault(logger)

	if err := cli.Run(logger); err != nil {
		logger.Error("failed", "error", err)
		os.Exit(exitCode(err))
	}
}

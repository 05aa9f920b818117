package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/sat/internal/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Check a scene of convex polygons for overlaps, printing every overlapping
// pair. The scene is read from a file (YAML, SVG, or plain points; see
// internal/scene) or, with no file argument, as plain points on stdin: newline
// separated "x y" pairs, with each polygon separated by an extra newline.
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "satcheck:", err)
		os.Exit(1)
	}
}

type options struct {
	scenePath string
	drawPath  string
	imgcat    bool
	scale     float64
	verbose   bool
	noColor   bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	app := kingpin.New("satcheck", "Report overlapping pairs of convex polygons.")
	app.Flag("draw", "Render the scene to this PNG file.").StringVar(&opts.drawPath)
	app.Flag("imgcat", "Print the rendered scene inline (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per world unit when rendering.").Default("40").Float64Var(&opts.scale)
	app.Flag("verbose", "Log debug output.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)
	app.Arg("scene", "Scene file. Reads points from stdin if omitted.").StringVar(&opts.scenePath)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	return config.Build()
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync() //nolint:errcheck

	var s *scene.Scene
	if opts.scenePath == "" {
		logger.Debug("reading points from stdin")
		s, err = scene.ReadText(stdin)
	} else {
		logger.Debug("loading scene", zap.String("path", opts.scenePath))
		s, err = scene.Load(opts.scenePath)
	}
	if err != nil {
		return err
	}
	logger.Info("scene loaded", zap.Int("shapes", len(s.Shapes)))

	pairs, err := s.Overlaps()
	if err != nil {
		return err
	}
	logger.Info("overlap check finished", zap.Int("overlapping_pairs", len(pairs)))

	au := aurora.NewAurora(!opts.noColor)
	if len(pairs) == 0 {
		fmt.Fprintln(stdout, au.Green("no overlaps"))
	}
	for _, pair := range pairs {
		fmt.Fprintf(stdout, "%s %s %s\n", au.Bold(pair.A), au.Red("overlaps"), au.Bold(pair.B))
	}

	if opts.drawPath != "" {
		if err := s.Render(opts.drawPath, opts.scale); err != nil {
			return err
		}
		logger.Debug("rendered scene", zap.String("path", opts.drawPath), zap.Float64("scale", opts.scale))
		if opts.imgcat {
			imgcat.CatFile(opts.drawPath, stdout)
		}
	} else if opts.imgcat {
		logger.Warn("--imgcat has no effect without --draw")
	}
	return nil
}

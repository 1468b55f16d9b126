// Command junctions links 3-D junction boxes shortest-first and prints either
// the product of the largest circuit sizes after a fixed number of links
// (-mode clusters) or the coordinate product of the link that connects every
// box (-mode complete).
//
// Usage:
//
//	junctions [-config run.yaml] [-input boxes.txt] [-mode clusters|complete]
//	          [-links N] [-top K] [-axis x|y|z] [-log-level LEVEL] [-log-format text|json]
//
// Flags override values from the config file. The answer goes to stdout,
// logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvlink/config"
	"github.com/katalvlaran/lvlink/geom"
	"github.com/katalvlaran/lvlink/linkage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("junctions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to YAML config file")
		input      = fs.String("input", config.DefaultInput, `point file, "-" for stdin`)
		mode       = fs.String("mode", config.DefaultMode, "clusters | complete")
		links      = fs.Int("links", config.DefaultLinkBudget, "links to accept in clusters mode")
		top        = fs.Int("top", config.DefaultTopK, "largest circuits to multiply in clusters mode")
		axis       = fs.String("axis", config.DefaultAxis, "coordinate to multiply in complete mode")
		logLevel   = fs.String("log-level", config.DefaultLogLevel, "debug | info | warn | error")
		logFormat  = fs.String("log-format", config.DefaultLogFormat, "text | json")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cfg = loaded
	}
	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "mode":
			cfg.Mode = *mode
		case "links":
			cfg.LinkBudget = *links
		case "top":
			cfg.TopK = *top
		case "axis":
			cfg.Axis = *axis
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Info("junctions starting", "mode", cfg.Mode, "input", cfg.Input)

	points, err := readInput(cfg.Input, stdin)
	if err != nil {
		logger.Error("failed to read points", "err", err)
		return 1
	}
	logger.Info("points loaded", "count", len(points))

	answer, err := solve(cfg, points, logger)
	if err != nil {
		logger.Error("run failed", "err", err)
		return 1
	}
	fmt.Fprintln(stdout, answer)

	return 0
}

// solve dispatches to the configured linkage mode and returns its answer.
func solve(cfg *config.Config, points []geom.Point, logger *slog.Logger) (int64, error) {
	axis, err := cfg.GeomAxis()
	if err != nil {
		return 0, err
	}
	opts := []linkage.Option{
		linkage.WithTopK(cfg.TopK),
		linkage.WithAxis(axis),
		linkage.WithLogger(logger),
	}

	switch cfg.Mode {
	case config.ModeComplete:
		res, err := linkage.CompletingEdge(points, opts...)
		if err != nil {
			return 0, err
		}

		return res.Product, nil
	default:
		res, err := linkage.ClusterProduct(points, cfg.LinkBudget, opts...)
		if err != nil {
			return 0, err
		}

		return int64(res.Product), nil
	}
}

func readInput(path string, stdin io.Reader) ([]geom.Point, error) {
	if path == "-" {
		return geom.ReadPoints(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return geom.ReadPoints(f)
}

func newLogger(lc config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

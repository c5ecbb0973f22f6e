// Package main provides the CLI entry point for speedline.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/pmdartus/speedline/pkg/adapters/filesink"
	"github.com/pmdartus/speedline/pkg/adapters/ggrenderer"
	"github.com/pmdartus/speedline/pkg/adapters/imagedecoder"
	"github.com/pmdartus/speedline/pkg/adapters/logger"
	"github.com/pmdartus/speedline/pkg/adapters/nullsink"
	"github.com/pmdartus/speedline/pkg/adapters/osfilesystem"
	"github.com/pmdartus/speedline/pkg/config"
	"github.com/pmdartus/speedline/pkg/orchestrator"
	"github.com/pmdartus/speedline/pkg/ports"
	"github.com/pmdartus/speedline/pkg/summarizer"
	"github.com/pmdartus/speedline/pkg/timeline"
	"github.com/pmdartus/speedline/pkg/trace"
)

var version = "dev"

const (
	categoryExtraction = "Extraction"
	categoryHistograms = "Histograms"
	categoryOutput     = "Output"
	categoryDebug      = "Debug"
	categoryLogging    = "Logging"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "speedline",
		Usage:     l10n.T("Extract screenshot frames and histograms from browser traces"),
		Version:   version,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			framesCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("speedline version %s", version))
					return nil
				},
			},
		},
	}
}

func framesCommand() *cli.Command {
	return &cli.Command{
		Name:      "frames",
		Usage:     l10n.T("Extract the deduplicated screenshot timeline of a trace"),
		ArgsUsage: "<trace.json|->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.Float64Flag{
				Name:     "time-origin",
				Usage:    l10n.T("Time origin in trace microseconds (default: earliest event)"),
				Category: l10n.T(categoryExtraction),
			},
			&cli.BoolFlag{
				Name:     "relative",
				Usage:    l10n.T("Express timestamps relative to the time origin"),
				Category: l10n.T(categoryExtraction),
			},
			&cli.BoolFlag{
				Name:     "histograms",
				Value:    true,
				Usage:    l10n.T("Compute per-frame color histograms"),
				Category: l10n.T(categoryHistograms),
			},
			&cli.IntFlag{
				Name:     "workers",
				Usage:    l10n.T("Histogram workers (0 = one per CPU)"),
				Category: l10n.T(categoryHistograms),
			},
			&cli.IntFlag{
				Name:     "white-threshold",
				Usage:    l10n.T("Ignore pixels whose channels are all at or above this value (0 = disabled)"),
				Category: l10n.T(categoryHistograms),
			},
			&cli.StringFlag{
				Name:     "summary",
				Aliases:  []string{"s"},
				Usage:    l10n.T("Write a Markdown summary to this path"),
				Category: l10n.T(categoryOutput),
			},
			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    l10n.T("Save frames and timeline metadata for inspection"),
				Category: l10n.T(categoryDebug),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Usage:    l10n.T("Directory for debug output"),
				Category: l10n.T(categoryDebug),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T(categoryLogging),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T(categoryLogging),
			},
		},
		Action: runFrames,
	}
}

// loadConfig merges the config file, if any, with flags set on the command line.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("time-origin") {
		origin := c.Float64("time-origin")
		cfg.TimeOrigin = &origin
	}
	if c.IsSet("relative") {
		cfg.Relative = c.Bool("relative")
	}
	if c.IsSet("histograms") {
		cfg.Histograms = c.Bool("histograms")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("white-threshold") {
		cfg.WhiteThreshold = c.Int("white-threshold")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = ports.LevelQuiet.String()
	}

	return cfg, cfg.Validate()
}

func runFrames(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("exactly one trace file is required"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Level())

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()
	decoder := imagedecoder.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, decoder)
	} else {
		sink = nullsink.New()
	}

	source, err := traceSource(c.Args().First(), c.App.Reader)
	if err != nil {
		return err
	}

	orch := orchestrator.New(
		timeline.NewExtractor(decoder, renderer, fs, sink, log, cfg.FrameOptions()...),
		timeline.NewHistogramStage(log, cfg.Workers),
		sink,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(source))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return cli.Exit(err, 130)
		}
		return err
	}

	if err := printFrames(c.App.Writer, result.Summary); err != nil {
		return err
	}

	if cfg.Summary != "" {
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(cfg.Summary, result.Summary); err != nil {
			log.Error("Failed to write output: %s", err)
			return err
		}
		log.Info("Summary saved to %s", cfg.Summary)
	}

	return nil
}

func newLogger(level ports.LogLevel) ports.Logger {
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(level)
}

// traceSource maps "-" to standard input and anything else to a file path.
func traceSource(arg string, stdin io.Reader) (trace.Source, error) {
	if arg != "-" {
		return trace.FromPath(arg), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return trace.Source{}, fmt.Errorf("read trace from stdin: %w", err)
	}
	return trace.FromBytes(data), nil
}

// printFrames writes one tab-aligned line per frame.
func printFrames(w io.Writer, s *summarizer.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\t%s\t%s\t%s\t\n", l10n.T("timestamp (ms)"), l10n.T("offset (ms)"), l10n.T("bytes"))
	for _, row := range s.Frames {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%d\t", row.Index, row.TimestampMs, row.OffsetMs, row.Bytes)
		if row.Mean != nil {
			fmt.Fprintf(tw, "%.1f\t%.1f\t%.1f\t", row.Mean[0], row.Mean[1], row.Mean[2])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"fnoutline/internal/core/app"
	"fnoutline/internal/core/config"
	"fnoutline/internal/core/errors"
	"fnoutline/internal/core/ports"
	"fnoutline/internal/engine/parser"
	"fnoutline/internal/shared/observability"
	"fnoutline/internal/ui/report/formats"

	"github.com/google/uuid"
)

const VERSION = "0.3.0"

type options struct {
	configPath  string
	format      string
	dialect     string
	workers     int
	outputPath  string
	metricsAddr string
	stdin       bool
	verbose     bool
	version     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("fnoutline", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (default: nearest "+config.DefaultFileName+")")
	fs.StringVar(&opts.format, "format", "", "Output format: tsv, json or markdown")
	fs.StringVar(&opts.dialect, "dialect", "", "Default dialect: javascript, typescript or tsx")
	fs.IntVar(&opts.workers, "workers", 0, "Number of files outlined concurrently")
	fs.StringVar(&opts.outputPath, "o", "", "Write output to file instead of stdout")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve /metrics and /health on this address")
	fs.BoolVar(&opts.stdin, "stdin", false, "Outline source read from stdin")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return opts, fs.Args(), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, paths, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	if opts.version {
		fmt.Fprintf(stdout, "fnoutline v%s\n", VERSION)
		return 0
	}

	// Setup logging. stdout is reserved for the outline.
	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(opts)
	if err != nil {
		slog.Error("failed to load config", "code", errors.CodeOf(err), "error", err)
		return 1
	}

	shutdown, err := observability.InitTracer(ctx, cfg.Observability.OTLPEndpoint, cfg.Observability.ServiceName)
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		return 1
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}

	if addr := cfg.Observability.MetricsAddr; addr != "" {
		srv := observability.NewMetricsServer(addr, a.Health)
		if err := srv.Start(ctx); err != nil {
			slog.Error("failed to start metrics server", "addr", addr, "error", err)
			return 1
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Stop(sctx)
		}()
	}

	var res ports.RunResult
	if opts.stdin {
		res, err = outlineStdin(a, cfg.Dialect(), stdin)
	} else {
		res, err = a.Run(ctx, ports.RunRequest{Paths: paths})
	}
	if err != nil {
		slog.Error("outline failed", "code", errors.CodeOf(err), "error", err)
		return 1
	}
	for _, w := range res.Warnings {
		slog.Warn("file skipped", "run_id", res.RunID, "detail", w)
	}

	out, err := formats.Render(cfg.Output.Format, VERSION, res)
	if err != nil {
		slog.Error("failed to render output", "error", err)
		return 1
	}
	if err := writeOutput(opts.outputPath, stdout, out); err != nil {
		slog.Error("failed to write output", "path", opts.outputPath, "error", err)
		return 1
	}
	return 0
}

func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.FindConfigFile(".")
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Debug("config loaded", "path", path)
		cfg.Paths = config.ResolveScanPaths(cfg, filepath.Dir(path))
	}

	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.dialect != "" {
		cfg.DefaultDialect = opts.dialect
	}
	if opts.workers > 0 {
		cfg.Scan.Workers = opts.workers
	}
	if opts.metricsAddr != "" {
		cfg.Observability.MetricsAddr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func outlineStdin(a *app.App, dialect parser.Dialect, stdin io.Reader) (ports.RunResult, error) {
	src, err := io.ReadAll(stdin)
	if err != nil {
		return ports.RunResult{}, err
	}
	fo, err := a.OutlineSource("<stdin>", dialect, src)
	if err != nil {
		return ports.RunResult{}, err
	}
	return ports.RunResult{RunID: uuid.NewString(), Files: []ports.FileOutline{fo}}, nil
}

func writeOutput(path string, stdout io.Writer, out string) error {
	if strings.TrimSpace(path) == "" {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

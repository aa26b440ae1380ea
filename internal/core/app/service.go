package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/core/ports"
	"fnoutline/internal/engine/parser"
	"fnoutline/internal/shared/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Run outlines every file reachable from req.Paths (or the configured paths)
// with a bounded worker pool. Per-file failures become warnings; only scan
// errors and cancellation fail the run.
func (a *App) Run(ctx context.Context, req ports.RunRequest) (ports.RunResult, error) {
	runID := uuid.NewString()
	ctx, span := observability.Tracer.Start(ctx, "app.Run", trace.WithAttributes(attribute.String("run.id", runID)))
	defer span.End()

	start := time.Now()
	defer func() { observability.RunDuration.Observe(time.Since(start).Seconds()) }()

	result := ports.RunResult{RunID: runID, Files: []ports.FileOutline{}}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	paths := req.Paths
	if len(paths) == 0 {
		paths = a.Config.Paths
	}
	files, err := a.ScanPaths(paths)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "scan failed")
		return result, errors.AddContext(err, errors.CtxOperation, "scan_paths")
	}
	slog.Debug("outline run started", "run_id", runID, "files", len(files), "workers", a.workers())

	outlines := make([]ports.FileOutline, len(files))
	warnings := make([]string, len(files))
	done := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	for i, path := range files {
		g.Go(func() error {
			if err := a.limiter.Wait(gctx, 1); err != nil {
				return err
			}
			fo, err := a.OutlineFile(gctx, path)
			if err != nil {
				if cerr := gctx.Err(); cerr != nil {
					return cerr
				}
				warnings[i] = fmt.Sprintf("outline %s: %v", path, err)
				return nil
			}
			outlines[i] = fo
			done[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run cancelled")
		return result, err
	}

	for i := range files {
		if done[i] {
			result.Files = append(result.Files, outlines[i])
		}
		if warnings[i] != "" {
			result.Warnings = append(result.Warnings, warnings[i])
		}
	}

	span.SetAttributes(
		attribute.Int("files", len(result.Files)),
		attribute.Int("warnings", len(result.Warnings)),
	)
	slog.Info("outline run complete",
		"run_id", runID,
		"files", len(result.Files),
		"warnings", len(result.Warnings),
		"duration", time.Since(start),
	)
	return result, nil
}

// OutlineFile reads and outlines one file. The dialect comes from the file
// extension, falling back to the configured default dialect.
func (a *App) OutlineFile(ctx context.Context, path string) (ports.FileOutline, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.OutlineFile", trace.WithAttributes(attribute.String("path", path)))
	defer span.End()

	fo, err := a.outlineFile(ctx, path)
	if err != nil {
		observability.FilesFailedTotal.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "outline failed")
		return ports.FileOutline{}, err
	}
	span.SetAttributes(
		attribute.String("dialect", string(fo.Dialect)),
		attribute.Int("declarations", len(fo.Declarations)),
		attribute.Bool("recovered", fo.Recovered),
	)
	return fo, nil
}

func (a *App) outlineFile(ctx context.Context, path string) (ports.FileOutline, error) {
	if err := ctx.Err(); err != nil {
		return ports.FileOutline{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports.FileOutline{}, errors.AddContext(errors.Wrap(err, errors.CodeNotFound, "file not found"), errors.CtxPath, path)
		}
		return ports.FileOutline{}, errors.AddContext(errors.Wrap(err, errors.CodeInternal, "stat file"), errors.CtxPath, path)
	}
	if info.IsDir() {
		return ports.FileOutline{}, errors.AddContext(errors.New(errors.CodeValidationError, "path is a directory"), errors.CtxPath, path)
	}
	if limit := a.Config.Scan.MaxFileBytes; limit > 0 && info.Size() > limit {
		return ports.FileOutline{}, errors.AddContext(
			errors.Newf(errors.CodeValidationError, "file is %d bytes, limit is %d", info.Size(), limit),
			errors.CtxPath, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ports.FileOutline{}, errors.AddContext(errors.Wrap(err, errors.CodeInternal, "read file"), errors.CtxPath, path)
	}

	dialect, ok := a.Parser.Loader().DialectForPath(path)
	if !ok {
		dialect = a.Config.Dialect()
	}
	return a.OutlineSource(path, dialect, content)
}

// OutlineSource outlines in-memory source text under the given name.
func (a *App) OutlineSource(name string, dialect parser.Dialect, src []byte) (ports.FileOutline, error) {
	outliner, ok := a.outliners[dialect]
	if !ok {
		return ports.FileOutline{}, errors.AddContext(errors.New(errors.CodeNotSupported, "no outliner for dialect"), errors.CtxDialect, string(dialect))
	}

	start := time.Now()
	res := outliner.Analyze(src)
	observability.ExtractionDuration.WithLabelValues(string(dialect)).Observe(time.Since(start).Seconds())
	for _, d := range res.Declarations {
		observability.DeclarationsTotal.WithLabelValues(string(d.Kind)).Inc()
	}
	if res.Recovered {
		observability.RecoveredParsesTotal.WithLabelValues(string(dialect)).Inc()
		slog.Debug("parser recovered from syntax errors", "path", name, "dialect", dialect)
	}
	observability.FilesProcessedTotal.Inc()

	return ports.FileOutline{
		Path:         name,
		Dialect:      outliner.Dialect(),
		Recovered:    res.Recovered,
		Declarations: res.Declarations,
	}, nil
}

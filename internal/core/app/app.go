package app

import (
	"fnoutline/internal/core/config"
	"fnoutline/internal/core/errors"
	"fnoutline/internal/core/ports"
	"fnoutline/internal/engine/outline"
	"fnoutline/internal/engine/parser"
	"fnoutline/internal/shared/util"
	"log/slog"
	"runtime"

	"github.com/gobwas/glob"
)

// App wires configuration, grammars and one outliner per dialect for batch
// runs over files and directories.
type App struct {
	Config *config.Config
	Parser *parser.Parser

	outliners    map[parser.Dialect]ports.Outliner
	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
	limiter      *util.Limiter
}

var _ ports.OutlineService = (*App)(nil)

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	registry, err := cfg.LanguageRegistry()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "build language registry")
	}
	loader, err := parser.NewGrammarLoaderWithRegistry(registry)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(loader)

	outliners := make(map[parser.Dialect]ports.Outliner, len(loader.Dialects()))
	for _, d := range loader.Dialects() {
		e, err := outline.New(outline.WithParser(p), outline.WithDialect(d))
		if err != nil {
			return nil, err
		}
		outliners[d] = e
	}

	excludeDirs, err := compileGlobs(cfg.Exclude.Dirs)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxField, "exclude.dirs")
	}
	excludeFiles, err := compileGlobs(cfg.Exclude.Files)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxField, "exclude.files")
	}

	a := &App{
		Config:       cfg,
		Parser:       p,
		outliners:    outliners,
		excludeDirs:  excludeDirs,
		excludeFiles: excludeFiles,
		limiter:      util.NewLimiter(cfg.Scan.FilesPerSecond, 0),
	}
	slog.Debug("app initialized",
		"dialects", loader.Dialects(),
		"extensions", loader.SupportedExtensions(),
		"workers", a.workers(),
	)
	return a, nil
}

func (a *App) workers() int {
	if a.Config.Scan.Workers > 0 {
		return a.Config.Scan.Workers
	}
	return runtime.NumCPU()
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeValidationError, "invalid exclude pattern "+p)
		}
		out = append(out, g)
	}
	return out, nil
}

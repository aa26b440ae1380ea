package config

import (
	"math"
	"slices"

	"fnoutline/internal/core/errors"
	"fnoutline/internal/engine/parser"

	"github.com/gobwas/glob"
)

func validate(cfg *Config) error {
	checks := []func(*Config) error{
		validateVersion,
		validateDialect,
		validateLanguages,
		validateExclude,
		validateScan,
		validateOutput,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func fieldError(field, format string, args ...any) error {
	return errors.AddContext(errors.Newf(errors.CodeValidationError, format, args...), errors.CtxField, field)
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fieldError("version", "unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateDialect(cfg *Config) error {
	if _, err := parser.ParseDialect(cfg.DefaultDialect); err != nil {
		return errors.AddContext(err, errors.CtxField, "default_dialect")
	}
	return nil
}

func validateLanguages(cfg *Config) error {
	for name := range cfg.Languages {
		if !parser.Dialect(name).Valid() {
			return fieldError("languages."+name, "unknown language %q (want javascript, typescript or tsx)", name)
		}
	}
	if _, err := cfg.LanguageRegistry(); err != nil {
		return errors.AddContext(errors.Wrap(err, errors.CodeValidationError, "invalid language extensions"), errors.CtxField, "languages")
	}
	return nil
}

func validateExclude(cfg *Config) error {
	for _, p := range cfg.Exclude.Dirs {
		if _, err := glob.Compile(p); err != nil {
			return fieldError("exclude.dirs", "invalid exclude dir pattern %q: %v", p, err)
		}
	}
	for _, p := range cfg.Exclude.Files {
		if _, err := glob.Compile(p); err != nil {
			return fieldError("exclude.files", "invalid exclude file pattern %q: %v", p, err)
		}
	}
	return nil
}

func validateScan(cfg *Config) error {
	if cfg.Scan.Workers < 0 {
		return fieldError("scan.workers", "scan.workers must be >= 0, got %d", cfg.Scan.Workers)
	}
	if cfg.Scan.FilesPerSecond < 0 || math.IsNaN(cfg.Scan.FilesPerSecond) || math.IsInf(cfg.Scan.FilesPerSecond, 0) {
		return fieldError("scan.files_per_second", "scan.files_per_second must be a finite value >= 0, got %v", cfg.Scan.FilesPerSecond)
	}
	if cfg.Scan.MaxFileBytes < 0 {
		return fieldError("scan.max_file_bytes", "scan.max_file_bytes must be >= 0, got %d", cfg.Scan.MaxFileBytes)
	}
	return nil
}

func validateOutput(cfg *Config) error {
	if !slices.Contains(OutputFormats, cfg.Output.Format) {
		return fieldError("output.format", "output.format must be one of %v, got %q", OutputFormats, cfg.Output.Format)
	}
	return nil
}

// Validate re-checks the configuration after callers changed it, e.g. when
// command-line flags override loaded values.
func (c *Config) Validate() error {
	normalize(c)
	return validate(c)
}

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the config file looked up when none is passed.
const DefaultFileName = "fnoutline.toml"

// ResolveScanPaths resolves the configured paths against base, usually the
// directory holding the config file.
func ResolveScanPaths(cfg *Config, base string) []string {
	out := make([]string, 0, len(cfg.Paths))
	seen := make(map[string]bool, len(cfg.Paths))
	for _, p := range cfg.Paths {
		resolved := ResolveRelative(base, p)
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		out = append(out, resolved)
	}
	return out
}

func ResolveRelative(base, value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	return filepath.Clean(filepath.Join(base, raw))
}

// FindConfigFile walks up from start looking for DefaultFileName. It returns
// "" when no file is found before the filesystem root.
func FindConfigFile(start string) string {
	abs, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	root := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		root = filepath.Dir(abs)
	}

	for {
		candidate := filepath.Join(root, DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.Clean(candidate)
		}
		parent := filepath.Dir(root)
		if parent == root {
			return ""
		}
		root = parent
	}
}

package app

import (
	"fnoutline/internal/core/errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ScanPaths expands files and directories into the sorted list of source
// files to outline. Directories are walked recursively, skipping excluded
// directories, excluded file names and unsupported extensions. A path named
// explicitly is kept when its extension is supported, even if it matches a
// file exclude.
func (a *App) ScanPaths(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	loader := a.Parser.Loader()
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.AddContext(errors.Wrap(err, errors.CodeNotFound, "scan path not found"), errors.CtxPath, root)
			}
			return nil, errors.AddContext(errors.Wrap(err, errors.CodeInternal, "stat scan path"), errors.CtxPath, root)
		}
		if !info.IsDir() {
			if loader.IsSupportedPath(root) {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				if path != root && a.excludedDir(base) {
					return filepath.SkipDir
				}
				return nil
			}

			if !loader.IsSupportedPath(path) || a.excludedFile(base) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, errors.AddContext(errors.Wrap(err, errors.CodeInternal, "walk scan path"), errors.CtxPath, root)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (a *App) excludedDir(base string) bool {
	for _, g := range a.excludeDirs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

func (a *App) excludedFile(base string) bool {
	for _, g := range a.excludeFiles {
		if g.Match(base) {
			return true
		}
	}
	return false
}

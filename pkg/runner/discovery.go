package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds event files matching opts. It returns a sorted list of
// absolute file paths without duplicates.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	filter := fileFilter{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		season:     opts.Season,
		exclude:    opts.ExcludeGlobs,
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Files named explicitly only need the right extension.
			if hasMatchingExtension(absPath, filter.extensions) {
				add(absPath)
			}
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, filter, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		for _, path := range discovered {
			add(path)
		}
	}

	slices.Sort(files)
	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type fileFilter struct {
	workDir    string
	extensions []string
	season     string
	exclude    []string
}

func (f fileFilter) rel(path string) string {
	rel, err := filepath.Rel(f.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (f fileFilter) excluded(path string) bool {
	rel := f.rel(path)
	for _, pattern := range f.exclude {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

func (f fileFilter) matches(path string) bool {
	if !hasMatchingExtension(path, f.extensions) {
		return false
	}
	if f.season != "" && !strings.HasPrefix(strings.ToUpper(filepath.Base(path)), strings.ToUpper(f.season)) {
		return false
	}
	return !f.excluded(path)
}

// walkDirectory recursively walks root and returns matching event files.
func walkDirectory(ctx context.Context, root string, filter fileFilter, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && filter.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Inaccessible symlink targets are skipped.
			}
			if info.IsDir() {
				if !followSymlinks {
					return nil
				}
				// Walk the target; WalkDir would not descend into the link itself.
				subFiles, err := walkDirectory(ctx, realPath, filter, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if filter.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// hasMatchingExtension compares extensions without regard to case, since
// archives ship both 2018NYA.EVA and 2018nya.eva spellings.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against a pattern.
// A pattern without a slash also matches the base name, and a trailing
// "/**" matches everything under a directory.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		matched, err := filepath.Match(pattern, filepath.Base(path))
		return err == nil && matched
	}
	return false
}

package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"golang.org/x/time/rate"

	"hooklint/internal/config"
	"hooklint/internal/engine/hookstate"
	"hooklint/internal/engine/parser"
	"hooklint/internal/errors"
	"hooklint/internal/report"
	"hooklint/internal/watcher"
)

// App wires the parser and the rule engine to the filesystem: it scans the
// configured paths, keeps per-file results, and optionally re-analyzes
// files as they change.
type App struct {
	cfg     *config.Config
	parser  *parser.Parser
	engine  *hookstate.Engine
	limiter *rate.Limiter
	watcher *watcher.Watcher

	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob

	mu      sync.Mutex
	results map[string][]hookstate.Diagnostic
}

func New(cfg *config.Config) (*App, error) {
	excludeDirs, err := compileGlobs(cfg.Exclude.Dirs)
	if err != nil {
		return nil, err
	}
	excludeFiles, err := compileGlobs(cfg.Exclude.Files)
	if err != nil {
		return nil, err
	}

	engine := hookstate.New(hookstate.Config{
		Module:      cfg.Rule.Module,
		Initializer: cfg.Rule.Initializer,
		Memoizer:    cfg.Rule.Memoizer,
	})

	return &App{
		cfg:          cfg,
		parser:       parser.NewParser(parser.NewGrammarLoader()),
		engine:       engine,
		limiter:      rate.NewLimiter(rate.Limit(cfg.Watch.RescansPerSecond), 1),
		excludeDirs:  excludeDirs,
		excludeFiles: excludeFiles,
		results:      make(map[string][]hookstate.Diagnostic),
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// ScanAll walks the configured paths and analyzes every supported file.
// Results are ordered by path so repeated runs are reproducible.
func (a *App) ScanAll() ([]report.FileResult, error) {
	var files []string
	for _, root := range a.cfg.Paths {
		found, err := a.collectFiles(root)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	sort.Strings(files)

	for _, path := range files {
		if err := a.analyzeFile(path); err != nil {
			slog.Warn("failed to process file", "path", path, "error", err)
		}
	}
	return a.Results(), nil
}

func (a *App) collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if a.shouldExcludeDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if a.shouldExcludeFile(path) || !a.parser.IsSupportedPath(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func (a *App) analyzeFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.CodeNotFound, "read failed")
	}

	file, err := a.parser.ParseFile(path, content)
	if err != nil {
		return err
	}
	defer file.Close()

	diags := a.engine.Analyze(file.Root(), file.Source, path)

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(diags) == 0 {
		delete(a.results, path)
	} else {
		a.results[path] = diags
	}
	return nil
}

// Results snapshots the current per-file diagnostics, sorted by path.
func (a *App) Results() []report.FileResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	paths := make([]string, 0, len(a.results))
	for path := range a.results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]report.FileResult, 0, len(paths))
	for _, path := range paths {
		out = append(out, report.FileResult{Path: path, Diagnostics: a.results[path]})
	}
	return out
}

// StartWatch re-analyzes changed files and hands the refreshed result set
// to onResults. The rate limiter keeps event storms from re-running the
// scan more often than configured.
func (a *App) StartWatch(ctx context.Context, onResults func([]report.FileResult)) error {
	w, err := watcher.NewWatcher(
		a.cfg.Watch.Debounce,
		a.parser.SupportedExtensions(),
		a.cfg.Exclude.Dirs,
		a.cfg.Exclude.Files,
		func(paths []string) {
			if err := a.limiter.Wait(ctx); err != nil {
				return
			}
			slog.Info("detected changes", "count", len(paths))
			for _, path := range paths {
				if _, statErr := os.Stat(path); statErr != nil {
					a.mu.Lock()
					delete(a.results, path)
					a.mu.Unlock()
					continue
				}
				if err := a.analyzeFile(path); err != nil {
					slog.Warn("failed to re-process file", "path", path, "error", err)
				}
			}
			onResults(a.Results())
		},
	)
	if err != nil {
		return err
	}
	a.watcher = w
	return w.Watch(a.cfg.Paths)
}

func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

func (a *App) shouldExcludeDir(path string) bool {
	base := filepath.Base(path)
	for _, g := range a.excludeDirs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

func (a *App) shouldExcludeFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, g := range a.excludeFiles {
		if g.Match(base) {
			return true
		}
	}
	return false
}

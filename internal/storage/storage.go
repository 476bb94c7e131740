package storage

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Tiliavir/rce/internal/entry"
	"github.com/Tiliavir/rce/internal/model"
)

// DefaultWorkers bounds how many files are parsed concurrently.
const DefaultWorkers = 4

// Source describes where entry files live.
type Source struct {
	Dir       string
	Extension string // without the leading dot
	Workers   int
}

// FileResult is everything one entry file produced.
type FileResult struct {
	Path     string
	Events   []model.Event
	Problems []error // located line-level failures
	Err      error   // file-level I/O failure; Events is empty when set
}

// Result merges the per-file results of a directory scan, in path order.
type Result struct {
	Files []FileResult
}

// Events returns the events of every file.
func (r Result) Events() []model.Event {
	var events []model.Event
	for _, f := range r.Files {
		events = append(events, f.Events...)
	}
	return events
}

// Problems returns every line-level and file-level failure.
func (r Result) Problems() []error {
	var problems []error
	for _, f := range r.Files {
		if f.Err != nil {
			problems = append(problems, f.Err)
		}
		problems = append(problems, f.Problems...)
	}
	return problems
}

// FindFiles lists the regular files in dir whose extension is ext, sorted.
func FindFiles(dir, ext string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, entry.IOError(entry.ReadDir, dir, err)
	}
	suffix := "." + strings.TrimPrefix(ext, ".")
	var paths []string
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || filepath.Ext(de.Name()) != suffix {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadFile parses and expands every line of path. A bad line is recorded
// and parsing continues with the next one.
func LoadFile(path string, opts entry.Options) FileResult {
	res := FileResult{Path: path}
	f, err := os.Open(path)
	if err != nil {
		res.Err = entry.IOError(entry.ReadFile, path, err)
		return res
	}
	defer f.Close()

	// Lines may exceed a bufio.Scanner buffer.
	r := bufio.NewReader(f)
	lineNo := 0
	for {
		raw, err := r.ReadString('\n')
		if raw != "" {
			lineNo++
			res.addLine(strings.TrimRight(raw, "\r\n"), lineNo, opts)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Err = entry.IOError(entry.ReadFile, path, err)
			res.Events = nil
			break
		}
	}
	return res
}

func (res *FileResult) addLine(raw string, lineNo int, opts entry.Options) {
	e, err := entry.ParseLine(raw)
	if err != nil {
		res.Problems = append(res.Problems, entry.Locate(err, res.Path, lineNo))
		return
	}
	if e == nil {
		return
	}
	events, err := entry.Expand(e, opts)
	if err != nil {
		res.Problems = append(res.Problems, entry.Locate(err, res.Path, lineNo))
		return
	}
	res.Events = append(res.Events, events...)
}

// Load parses every entry file of src concurrently. Only an unreadable
// directory or a cancelled context fails the whole load; per-file failures
// are reported in the Result.
func Load(ctx context.Context, src Source, opts entry.Options) (Result, error) {
	paths, err := FindFiles(src.Dir, src.Extension)
	if err != nil {
		return Result{}, err
	}
	workers := src.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	slog.Debug("entry files found", "component", "storage", "dir", src.Dir, "count", len(paths), "workers", workers)

	files := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files[i] = LoadFile(path, opts)
			slog.Debug("entry file parsed", "component", "storage", "file", path,
				"events", len(files[i].Events), "problems", len(files[i].Problems))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Files: files}, nil
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return entry.IOError(entry.WriteFile, path, err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return entry.IOError(entry.WriteFile, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return entry.IOError(entry.WriteFile, path, err)
	}
	return nil
}

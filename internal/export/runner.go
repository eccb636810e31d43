package export

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/palette"
)

// Job describes one export file
type Job struct {
	Format Format
	Rows   []palette.Ramp
}

// Result represents the outcome of an async export
type Result struct {
	Format Format
	Path   string
	Err    error
}

// Runner writes export files into a directory
type Runner struct {
	Dir    string
	Prefix string
	Logger *slog.Logger
}

// NewRunner creates a runner for dir using prefix for file names
func NewRunner(dir, prefix string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{Dir: dir, Prefix: prefix, Logger: logger}
}

// Path builds "<dir>/<prefix>.<format>"
func Path(dir, prefix string, f Format) string {
	return filepath.Join(dir, prefix+"."+string(f))
}

// maxSuffix bounds the "-N" names tried before giving up
const maxSuffix = 1000

// CreateUnique creates Path exclusively, or the first "<prefix>-N.<format>"
// that does not exist yet. Existing files are never opened. Any error other
// than the file already existing is returned at once
func CreateUnique(dir, prefix string, f Format) (*os.File, string, error) {
	p := Path(dir, prefix, f)
	for n := 2; n <= maxSuffix; n++ {
		file, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return file, p, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("creating %s: %w", p, err)
		}
		p = Path(dir, fmt.Sprintf("%s-%d", prefix, n), f)
	}
	return nil, "", fmt.Errorf("no free file name for %s.%s in %s", prefix, f, dir)
}

// Run writes the job and returns the file written
func (r *Runner) Run(job Job) (string, error) {
	if len(job.Rows) == 0 {
		return "", palette.ErrNoColors
	}
	if err := config.ValidatePrefix(r.Prefix); err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	f, path, err := CreateUnique(r.Dir, r.Prefix, job.Format)
	if err != nil {
		return "", err
	}
	if err := Write(f, job.Format, job.Rows); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	r.Logger.Info("export written", slog.String("format", string(job.Format)),
		slog.String("path", path), slog.Int("colors", len(job.Rows)))
	return path, nil
}

// RunAsync writes the job in a goroutine and sends the result to results
func (r *Runner) RunAsync(job Job, results chan<- Result) {
	go func() {
		path, err := r.Run(job)
		if err != nil {
			r.Logger.Error("export failed", slog.String("format", string(job.Format)), slog.Any("error", err))
		}
		results <- Result{Format: job.Format, Path: path, Err: err}
	}()
}

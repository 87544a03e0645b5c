package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/harrison/secretscan/internal/classify"
	"github.com/harrison/secretscan/internal/entropy"
	"github.com/harrison/secretscan/internal/fileutil"
	"github.com/harrison/secretscan/internal/ignore"
	"github.com/harrison/secretscan/internal/models"
	"golang.org/x/sync/errgroup"
)

// maxDefaultWorkers caps the automatic pool size
const maxDefaultWorkers = 32

// Logger receives per-file diagnostics. The logger package's ConsoleLogger
// satisfies it.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string) {}

// Option configures a Scan call
type Option func(*options)

type options struct {
	logger Logger
}

// WithLogger routes skip, cap and failure messages to l
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// DefaultWorkers returns the pool size used when ScanConfig.MaxWorkers is 0
func DefaultWorkers() int {
	return min(maxDefaultWorkers, 2*runtime.GOMAXPROCS(0))
}

// Scan scans target and returns its findings. See ScanWithStats.
func Scan(ctx context.Context, target string, spec *ignore.Spec, cfg models.ScanConfig, opts ...Option) ([]models.Finding, error) {
	findings, _, err := ScanWithStats(ctx, target, spec, cfg, opts...)
	return findings, err
}

// ScanWithStats scans target, which may be a file or a directory, and also
// reports what happened to every discovered file.
//
// The only errors returned are a missing or inaccessible target and context
// cancellation. Per-file failures are absorbed and counted in Failed. When ctx
// is cancelled no further files are dispatched; files already being scanned
// finish and their findings are returned along with ctx.Err().
func ScanWithStats(ctx context.Context, target string, spec *ignore.Spec, cfg models.ScanConfig, opts ...Option) ([]models.Finding, models.ScanStats, error) {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	cfg = cfg.Normalized()

	var stats models.ScanStats

	root, files, err := enumerate(target, spec, &stats, o.logger)
	if err != nil {
		return nil, stats, err
	}

	var detector *entropy.Detector
	if cfg.EntropyEnabled {
		detector = entropy.New(cfg.EntropyThreshold)
	}

	workers := cfg.MaxWorkers
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	slots := make([]fileOutcome, len(files))

	var g errgroup.Group
	g.SetLimit(workers)

	var ctxErr error
	dispatched := 0
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		dispatched++
		i, path := i, path
		g.Go(func() error {
			slots[i] = runTask(func() fileOutcome {
				return scanFile(path, root, cfg, detector)
			})
			return nil
		})
	}
	_ = g.Wait() // tasks report through their slots

	var findings []models.Finding
	for i, out := range slots[:dispatched] {
		switch {
		case out.err != nil:
			stats.Failed++
			o.logger.LogWarn(fmt.Sprintf("failed to scan %s: %v", files[i], out.err))
			continue
		case out.skip != classify.SkipNone:
			stats.Skipped++
			o.logger.LogDebug(fmt.Sprintf("skipped %s: %s", files[i], out.skip))
			continue
		}
		stats.Scanned++
		if out.capped {
			stats.Capped++
			o.logger.LogDebug(fmt.Sprintf("finding cap of %d reached in %s", cfg.MaxFindingsPerFile, files[i]))
		}
		findings = append(findings, out.findings...)
	}
	stats.Findings = len(findings)

	if ctxErr != nil {
		return findings, stats, fmt.Errorf("scan cancelled: %w", ctxErr)
	}
	return findings, stats, nil
}

// enumerate resolves target into a scan root and the files to scan
func enumerate(target string, spec *ignore.Spec, stats *models.ScanStats, logger Logger) (string, []string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", nil, fmt.Errorf("cannot scan %s: %w", target, err)
	}

	if !info.IsDir() {
		root := filepath.Dir(target)
		stats.Discovered = 1
		if ignore.Matches(spec, target, root) {
			stats.Ignored = 1
			return root, nil, nil
		}
		return root, []string{target}, nil
	}

	result, err := fileutil.ScanDirectory(target, fileutil.ScanOptions{
		ExcludeFile: func(path string) bool {
			return ignore.Matches(spec, path, target)
		},
	})
	if err != nil {
		return "", nil, fmt.Errorf("cannot scan %s: %w", target, err)
	}
	for _, walkErr := range result.Errors {
		logger.LogWarn(walkErr.Error())
	}

	stats.Discovered = len(result.Files) + result.Excluded
	stats.Ignored = result.Excluded
	return target, result.Files, nil
}

// runTask runs one file task, turning a panic into an error for that file only
func runTask(task func() fileOutcome) (out fileOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = fileOutcome{err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return task()
}

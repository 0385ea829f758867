package scaffold

// ABOUTME: Age-based cleanup sweep over a tmp directory tree: selects and
// ABOUTME: deletes regular files older than a cutoff, with dry-run support.

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultSweepAge is the fallback cutoff when MaxAge is negative. A zero
// MaxAge is honored as-is: it selects every file modified before now.
const DefaultSweepAge = 7 * 24 * time.Hour

// DefaultExclude lists subdirectories skipped by default during a sweep.
var DefaultExclude = []string{"Backups"}

// SweepOptions are the inputs to one sweep pass.
type SweepOptions struct {
	TargetRoot string
	MaxAge     time.Duration
	DryRun     bool
	// Exclude holds slash-separated paths relative to TargetRoot whose
	// subtrees are skipped entirely.
	Exclude []string
}

// SweptFile is one file selected for deletion.
type SweptFile struct {
	Path string
	Age  time.Duration
	Size int64
}

// SweepFailure records a file that could not be statted or removed.
type SweepFailure struct {
	Path   string
	Reason string
}

// SweepReport summarizes one sweep pass. In dry-run mode Deleted stays zero
// and BytesReclaimed holds the would-be total.
type SweepReport struct {
	DryRun         bool
	Scanned        int
	Selected       []SweptFile
	Deleted        int
	Failures       []SweepFailure
	BytesReclaimed int64
}

// Sweep walks every regular file under opts.TargetRoot and deletes (or, in
// dry-run mode, reports) those strictly older than opts.MaxAge, judged by
// the filesystem modification timestamp. A file exactly at the cutoff is
// kept. Directories are never removed, even when emptied. Per-file failures
// are recorded and never abort the pass; only a missing target is fatal.
func Sweep(opts SweepOptions) (*SweepReport, error) {
	info, err := os.Stat(opts.TargetRoot)
	if err != nil {
		return nil, NewTargetError("sweep target %s: %v", opts.TargetRoot, err)
	}
	if !info.IsDir() {
		return nil, NewTargetError("sweep target %s is not a directory", opts.TargetRoot)
	}

	maxAge := opts.MaxAge
	if maxAge < 0 {
		maxAge = DefaultSweepAge
	}

	now := time.Now()
	cutoff := now.Add(-maxAge)
	report := &SweepReport{DryRun: opts.DryRun}

	walkErr := filepath.WalkDir(opts.TargetRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			report.Failures = append(report.Failures, SweepFailure{Path: path, Reason: err.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != opts.TargetRoot && excluded(opts.TargetRoot, path, opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		report.Scanned++

		fi, err := d.Info()
		if err != nil {
			report.Failures = append(report.Failures, SweepFailure{Path: path, Reason: err.Error()})
			return nil
		}

		// Strict inequality: a file exactly at the cutoff is kept.
		if !fi.ModTime().Before(cutoff) {
			return nil
		}

		report.Selected = append(report.Selected, SweptFile{
			Path: path,
			Age:  now.Sub(fi.ModTime()),
			Size: fi.Size(),
		})

		if opts.DryRun {
			report.BytesReclaimed += fi.Size()
			return nil
		}

		if err := os.Remove(path); err != nil {
			report.Failures = append(report.Failures, SweepFailure{Path: path, Reason: err.Error()})
			return nil
		}
		report.Deleted++
		report.BytesReclaimed += fi.Size()
		return nil
	})
	if walkErr != nil {
		return report, walkErr
	}

	return report, nil
}

// excluded reports whether path falls inside one of the excluded subtrees.
func excluded(root, path string, exclude []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, ex := range exclude {
		ex = strings.Trim(strings.TrimSpace(filepath.ToSlash(ex)), "/")
		if ex == "" {
			continue
		}
		if rel == ex || strings.HasPrefix(rel, ex+"/") {
			return true
		}
	}
	return false
}

// FormatBytes renders a byte count the way the sweep summary prints it.
func FormatBytes(n int64) string {
	switch {
	case n < 1<<10:
		return fmt.Sprintf("%d bytes", n)
	case n < 1<<20:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	case n < 1<<30:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(1<<30))
	}
}

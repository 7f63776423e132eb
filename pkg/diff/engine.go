package diff

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/hashdiff/pkg/compare"
	"github.com/sdejongh/hashdiff/pkg/logging"
	"github.com/sdejongh/hashdiff/pkg/models"
	"github.com/sdejongh/hashdiff/pkg/storage"
)

// Engine orchestrates one comparison run. It classifies the two paths,
// picks the file or tree strategy, and accumulates the diff report.
type Engine struct {
	comparator compare.Comparator
	logger     logging.Logger
	diag       io.Writer
}

// NewEngine creates a new diff engine. The diag writer receives immediate
// per-file diagnostics for hash failures; logger may be nil to disable
// logging.
func NewEngine(comparator compare.Comparator, logger logging.Logger, diag io.Writer) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if diag == nil {
		diag = io.Discard
	}
	return &Engine{
		comparator: comparator,
		logger:     logger,
		diag:       diag,
	}
}

// Run classifies the two paths and executes the comparison
func (e *Engine) Run(ctx context.Context, path1, path2 string) (*models.DiffReport, error) {
	report := &models.DiffReport{
		RunID:     uuid.New().String(),
		Kind:      Classify(path1, path2),
		Path1:     path1,
		Path2:     path2,
		StartTime: time.Now(),
	}

	e.logger.Info(ctx, "comparison started", logging.Fields{
		"run_id": report.RunID,
		"kind":   string(report.Kind),
		"path1":  path1,
		"path2":  path2,
	})

	var err error
	switch report.Kind {
	case models.KindFiles:
		err = e.compareFiles(ctx, report)
	case models.KindDirs:
		err = e.compareTrees(ctx, report)
	case models.KindMismatch:
		// Nothing to compare; the reporter prints the mismatch message
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	if err != nil {
		e.logger.Error(ctx, "comparison failed", err, logging.Fields{
			"run_id": report.RunID,
		})
		return nil, err
	}

	e.logger.Info(ctx, "comparison finished", logging.Fields{
		"run_id":    report.RunID,
		"duration":  report.Duration.String(),
		"scanned_1": report.Stats.FilesScanned1,
		"scanned_2": report.Stats.FilesScanned2,
		"unique":    report.Stats.FilesUnique,
		"differed":  report.Stats.FilesDiffered,
		"errored":   report.Stats.FilesErrored,
	})

	return report, nil
}

// compareFiles handles the file-vs-file case by rooting a backend at each
// file's parent directory and comparing the base names through it.
func (e *Engine) compareFiles(ctx context.Context, report *models.DiffReport) error {
	side1, err := storage.NewLocal(filepath.Dir(report.Path1))
	if err != nil {
		return fmt.Errorf("failed to open first side: %w", err)
	}
	defer side1.Close()

	side2, err := storage.NewLocal(filepath.Dir(report.Path2))
	if err != nil {
		return fmt.Errorf("failed to open second side: %w", err)
	}
	defer side2.Close()

	cmp := e.comparator.Compare(ctx, side1, side2, filepath.Base(report.Path1), filepath.Base(report.Path2))
	e.recordOutcome(ctx, report, cmp)

	report.Stats.FilesScanned1 = 1
	report.Stats.FilesScanned2 = 1
	report.Stats.FilesCompared = 1
	report.File = cmp
	return nil
}

// compareTrees handles the directory-vs-directory case. Each tree is a set
// of relative-path-identified regular files; the symmetric difference is
// reported as unique entries and the intersection is delegated to the
// comparator. Files identical on both sides produce no entry at all.
func (e *Engine) compareTrees(ctx context.Context, report *models.DiffReport) error {
	side1, err := storage.NewLocal(report.Path1)
	if err != nil {
		return fmt.Errorf("failed to open first side: %w", err)
	}
	defer side1.Close()

	side2, err := storage.NewLocal(report.Path2)
	if err != nil {
		return fmt.Errorf("failed to open second side: %w", err)
	}
	defer side2.Close()

	files1, err := side1.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", report.Path1, err)
	}

	files2, err := side2.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", report.Path2, err)
	}

	set1 := make(map[string]struct{}, len(files1))
	for _, f := range files1 {
		set1[f.RelativePath] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(files2))
	for _, f := range files2 {
		set2[f.RelativePath] = struct{}{}
	}

	report.Stats.FilesScanned1 = len(set1)
	report.Stats.FilesScanned2 = len(set2)
	report.Entries = make(map[string]string)

	// Symmetric difference: files present on exactly one side
	for rel := range set1 {
		if _, ok := set2[rel]; !ok {
			report.Entries[rel] = models.UniqueMessage(report.Path1)
			report.Stats.FilesUnique++
		}
	}
	for rel := range set2 {
		if _, ok := set1[rel]; !ok {
			report.Entries[rel] = models.UniqueMessage(report.Path2)
			report.Stats.FilesUnique++
		}
	}

	// Intersection: delegate to the comparator, one file at a time
	for rel := range set1 {
		if _, ok := set2[rel]; !ok {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cmp := e.comparator.Compare(ctx, side1, side2, rel, rel)
		e.recordOutcome(ctx, report, cmp)

		report.Stats.FilesCompared++
		if !cmp.Match {
			report.Entries[rel] = cmp.Message
		}
	}

	return nil
}

// recordOutcome updates statistics and emits the immediate diagnostic for a
// failed hash. One unreadable file degrades its own result line only; the
// rest of the run continues.
func (e *Engine) recordOutcome(ctx context.Context, report *models.DiffReport, cmp *models.Comparison) {
	switch {
	case cmp.Err != nil:
		report.Stats.FilesErrored++
		fmt.Fprintf(e.diag, "Error: %v\n", cmp.Err)
		e.logger.Error(ctx, "hash calculation failed", cmp.Err, logging.Fields{
			"run_id": report.RunID,
			"path1":  cmp.Path1,
			"path2":  cmp.Path2,
		})
	case cmp.Match:
		report.Stats.FilesMatched++
	default:
		report.Stats.FilesDiffered++
	}
}

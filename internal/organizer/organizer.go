package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/logging"
	"github.com/fenilsonani/file-organizer/internal/mover"
	"github.com/fenilsonani/file-organizer/internal/progress"
	"github.com/fenilsonani/file-organizer/internal/scanner"
)

// Options configures an Organizer
type Options struct {
	Table    *category.Table
	Mover    *mover.Mover
	Scanner  *scanner.Scanner // defaults to a scanner sharing Logger
	WorkDir  string
	Logger   *slog.Logger
	Progress *progress.Reporter // optional
}

// Organizer sorts the regular files directly inside a working directory
// into folders under the mover's root. Files are handled one at a time and
// a failed move never stops the batch.
type Organizer struct {
	table    *category.Table
	mover    *mover.Mover
	scanner  *scanner.Scanner
	workDir  string
	logger   *slog.Logger
	progress *progress.Reporter
}

// New creates a new Organizer
func New(opts Options) (*Organizer, error) {
	if opts.Table == nil {
		return nil, errors.New("organizer: category table is required")
	}
	if opts.Mover == nil {
		return nil, errors.New("organizer: mover is required")
	}
	if opts.WorkDir == "" {
		return nil, errors.New("organizer: working directory is required")
	}

	workDir, err := filepath.Abs(opts.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("organizer: resolve working directory: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	sc := opts.Scanner
	if sc == nil {
		sc = scanner.New(logger)
	}

	return &Organizer{
		table:    opts.Table,
		mover:    opts.Mover,
		scanner:  sc,
		workDir:  workDir,
		logger:   logger,
		progress: opts.Progress,
	}, nil
}

// Table returns the category table used for classification
func (o *Organizer) Table() *category.Table {
	return o.table
}

// WorkDir returns the directory being organized
func (o *Organizer) WorkDir() string {
	return o.workDir
}

// Run dispatches req to ByType or ByKeyword
func (o *Organizer) Run(ctx context.Context, req Request) (*Result, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	switch req.Mode {
	case ModeKeyword:
		return o.ByKeyword(ctx, req.Folder, req.Keyword)
	default:
		return o.ByType(ctx, req.Extension)
	}
}

// ByType provisions every category folder, then moves each regular file of
// the working directory into the folder of its category. A non-empty filter
// limits the batch to files with that extension. Files without a category
// stay where they are and are listed in Result.Unclassified.
func (o *Organizer) ByType(ctx context.Context, filter string) (*Result, error) {
	mode := ModeAll
	if filter != "" {
		mode = ModeType
		filter = category.NormalizeExtension(filter)
		if filter == "" {
			return nil, ErrEmptyExtension
		}
	}

	result := o.newResult(mode)
	result.Filter = filter

	o.publish(result, progress.Update{Phase: progress.PhaseProvisioning})
	if err := o.mover.EnsureCategoryFolders(o.table); err != nil {
		return o.fail(result, fmt.Errorf("failed to prepare category folders: %w", err))
	}

	files, err := o.scan(result)
	if err != nil {
		return o.fail(result, err)
	}

	var eligible []scanner.FileEntry
	for _, f := range files {
		if filter == "" || f.Ext == filter {
			eligible = append(eligible, f)
		}
	}
	result.Matched = len(eligible)

	for i, f := range eligible {
		if err := ctx.Err(); err != nil {
			return o.finish(result), err
		}

		folder, ok := o.table.Classify(f.Ext)
		if !ok {
			o.logger.Debug("no category for file", "file", f.Name, "extension", f.Ext)
			result.Unclassified = append(result.Unclassified, f)
			continue
		}

		result.record(o.mover.Move(f, folder))
		o.publishMove(result, f, folder, i+1, len(eligible))
	}

	return o.finish(result), nil
}

// ByKeyword provisions folder, then moves every regular file whose name
// contains keyword into it. Matching ignores case and extension.
func (o *Organizer) ByKeyword(ctx context.Context, folder, keyword string) (*Result, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	result := o.newResult(ModeKeyword)
	result.Folder = folder
	result.Keyword = keyword

	o.publish(result, progress.Update{Phase: progress.PhaseProvisioning, Folder: folder})
	if err := o.mover.EnsureFolder(folder); err != nil {
		return o.fail(result, fmt.Errorf("failed to prepare folder %q: %w", folder, err))
	}

	files, err := o.scan(result)
	if err != nil {
		return o.fail(result, err)
	}

	fold := cases.Fold()
	needle := fold.String(keyword)

	var matched []scanner.FileEntry
	for _, f := range files {
		if strings.Contains(fold.String(f.Name), needle) {
			matched = append(matched, f)
		}
	}
	result.Matched = len(matched)

	for i, f := range matched {
		if err := ctx.Err(); err != nil {
			return o.finish(result), err
		}
		result.record(o.mover.Move(f, folder))
		o.publishMove(result, f, folder, i+1, len(matched))
	}

	return o.finish(result), nil
}

func (o *Organizer) newResult(mode Mode) *Result {
	r := &Result{
		RunID:   uuid.NewString(),
		Mode:    mode,
		WorkDir: o.workDir,
		Root:    o.mover.Root(),
		DryRun:  o.mover.DryRun(),
		Started: time.Now(),
	}
	o.logger.Info("organize run started",
		"run_id", r.RunID,
		"mode", mode.String(),
		"work_dir", r.WorkDir,
		"root", r.Root,
		"dry_run", r.DryRun)
	return r
}

func (o *Organizer) scan(result *Result) ([]scanner.FileEntry, error) {
	scan, err := o.scanner.Scan(o.workDir)
	if err != nil {
		return nil, err
	}
	for _, scanErr := range scan.Errors {
		o.logger.Warn("skipping entry", "run_id", result.RunID, logging.Error(scanErr))
	}
	result.ScanErrors = scan.Errors
	return scan.Files(), nil
}

func (o *Organizer) finish(result *Result) *Result {
	result.Finished = time.Now()
	o.logger.Info("organize run finished",
		"run_id", result.RunID,
		"matched", result.Matched,
		"moved", result.Moved,
		"failed", len(result.Failures),
		"unclassified", len(result.Unclassified),
		"duration", result.Duration())
	o.publish(result, progress.Update{Phase: progress.PhaseComplete})
	return result
}

func (o *Organizer) fail(result *Result, err error) (*Result, error) {
	result.Finished = time.Now()
	o.logger.Error("organize run failed", "run_id", result.RunID, logging.Error(err))
	o.publish(result, progress.Update{Phase: progress.PhaseError, Error: err})
	return nil, err
}

func (o *Organizer) publishMove(result *Result, f scanner.FileEntry, folder string, done, total int) {
	o.publish(result, progress.Update{
		Phase:       progress.PhaseMoving,
		Folder:      folder,
		CurrentFile: f.Name,
		Done:        done,
		Total:       total,
	})
}

// publish fills the running totals of u from result
func (o *Organizer) publish(result *Result, u progress.Update) {
	if o.progress == nil {
		return
	}
	u.RunID = result.RunID
	u.Moved = result.Moved
	u.Failed = len(result.Failures)
	u.MovedBytes = result.MovedBytes
	u.StartTime = result.Started
	o.progress.Publish(u)
}

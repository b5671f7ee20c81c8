package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/file-organizer/internal/category"
	"github.com/fenilsonani/file-organizer/internal/config"
	"github.com/fenilsonani/file-organizer/internal/logging"
	"github.com/fenilsonani/file-organizer/internal/mover"
	"github.com/fenilsonani/file-organizer/internal/organizer"
	"github.com/fenilsonani/file-organizer/internal/platform"
	"github.com/fenilsonani/file-organizer/internal/progress"
	"github.com/fenilsonani/file-organizer/internal/reporter"
	"github.com/fenilsonani/file-organizer/internal/security"
	"github.com/fenilsonani/file-organizer/internal/ui"
)

// app holds everything a command needs for one invocation
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	table     *category.Table
	workDir   string
	root      string
	organizer *organizer.Organizer
	progress  *progress.Reporter
	reporter  *reporter.Reporter
	format    reporter.OutputFormat
	file      string
	out       io.Writer
}

func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
	if err != nil {
		return nil, err
	}

	info, err := platform.GetInfo()
	if err != nil {
		return nil, err
	}

	workDir := info.WorkDir
	if opts.dir != "" {
		workDir = opts.dir
	}
	if workDir, err = filepath.Abs(workDir); err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	root := cfg.ResolveDestinationRoot(info.HomeDir)
	if opts.dest != "" {
		root = opts.dest
	}
	if root, err = filepath.Abs(root); err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}
	if err := security.NewPathValidator(info.ReservedChars).ValidateDestinationRoot(root); err != nil {
		return nil, err
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, fmt.Errorf("invalid category table: %w", err)
	}
	for _, o := range table.Overlaps() {
		logger.Warn("extension belongs to several categories",
			"extension", o.Extension, "used", o.Winner, "ignored", o.Shadowed)
	}

	m := mover.New(mover.Options{
		Root:            root,
		Overwrite:       cfg.Overwrite,
		DryRun:          cfg.DryRun,
		ReservedChars:   info.ReservedChars,
		CaseInsensitive: info.CaseInsensitive,
		Logger:          logger,
	})

	events := progress.NewReporter()
	org, err := organizer.New(organizer.Options{
		Table:    table,
		Mover:    m,
		WorkDir:  workDir,
		Logger:   logger,
		Progress: events,
	})
	if err != nil {
		return nil, err
	}

	format, err := reporter.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	color := false
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		color = ui.IsTerminal(f)
	}

	logger.Debug("organizer ready",
		"os", info.OS, "dir", workDir, "dest", root,
		"categories", table.Len(), "dry_run", cfg.DryRun, "overwrite", cfg.Overwrite)

	return &app{
		cfg:       cfg,
		logger:    logger,
		table:     table,
		workDir:   workDir,
		root:      root,
		organizer: org,
		progress:  events,
		reporter:  reporter.New(out, format).WithTable(table).WithColor(color),
		format:    format,
		file:      opts.file,
		out:       out,
	}, nil
}

func loadConfig(opts *options) (*config.Config, error) {
	cfgPath, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	return config.Load(cfgPath)
}

func resolveConfigPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.GetConfigPath()
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("overwrite") {
		cfg.Overwrite = opts.overwrite
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
}

// run organizes and saves the report file when one was requested
func (a *app) run(ctx context.Context, req organizer.Request) (*organizer.Result, error) {
	result, err := a.organizer.Run(ctx, req)
	if result != nil && a.file != "" {
		if saveErr := reporter.SaveToFile(result, a.file, a.format, a.table); saveErr != nil {
			a.logger.Error("failed to save report", "path", a.file, logging.Error(saveErr))
		}
	}
	return result, err
}

// organize runs a single request and reports it
func (a *app) organize(ctx context.Context, req organizer.Request) error {
	result, err := a.run(ctx, req)
	if result != nil {
		if reportErr := a.reporter.Report(result); reportErr != nil {
			return reportErr
		}
	}
	if err != nil {
		return err
	}
	if n := len(result.Failures); n > 0 {
		return fmt.Errorf("%d file(s) could not be moved", n)
	}
	return nil
}

func (a *app) runMenu(ctx context.Context, in io.Reader) error {
	return ui.NewMenu(in, a.out, a.run, a.reporter).Run(ctx)
}

func (a *app) runTUI(ctx context.Context) error {
	return ui.RunTUI(ctx, ui.AppOptions{
		Run:      a.run,
		Progress: a.progress,
		Table:    a.table,
		WorkDir:  a.workDir,
		Root:     a.root,
		DryRun:   a.cfg.DryRun,
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/file-organizer/internal/config"
	"github.com/fenilsonani/file-organizer/internal/organizer"
)

func newAllCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Organize every file by type",
		Long: `Moves every file of the directory whose extension belongs to a category
into that category's folder. Files of unknown types stay where they are.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.organize(cmd.Context(), organizer.Request{Mode: organizer.ModeAll})
		},
	}
}

func newTypeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "type EXTENSION",
		Short: "Organize the files of one type",
		Long: `Moves the files with the given extension into their category folder.
The leading dot is optional and case is ignored: "PDF", "pdf" and ".pdf" are the same.`,
		Example: "  organize type .pdf\n  organize type jpg --dry-run",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.organize(cmd.Context(), organizer.Request{Mode: organizer.ModeType, Extension: args[0]})
		},
	}
}

func newKeywordCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keyword FOLDER KEYWORD",
		Short: "Move files whose name contains a keyword into a folder",
		Long: `Creates FOLDER in the destination directory and moves every file whose
name contains KEYWORD into it. Matching ignores case and file type.`,
		Example: `  organize keyword Taxes invoice`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.organize(cmd.Context(), organizer.Request{Mode: organizer.ModeKeyword, Folder: args[0], Keyword: args[1]})
		},
	}
}

func newCategoriesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories and their extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.reporter.ReportCategories(a.table, a.root)
		},
	}
}

func newConfigCommand(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Display current configuration",
		Long:  `Shows the configuration file being used.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", cfgPath)

			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "Config file does not exist. Using default configuration.")
				fmt.Fprintln(out, "\nTo create a config file:")
				fmt.Fprintln(out, "  organize config init")
				return nil
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			dest := cfg.DestinationRoot
			if dest == "" {
				dest = "~ (home directory)"
			}
			fmt.Fprintf(out, "Categories: %d\n", len(cfg.Categories))
			fmt.Fprintf(out, "Destination: %s\n", dest)
			fmt.Fprintf(out, "Overwrite: %t\n", cfg.Overwrite)
			fmt.Fprintf(out, "Dry run: %t\n", cfg.DryRun)
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}
			created, err := config.EnsureConfigExists(cfgPath)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote example configuration to %s\n", cfgPath)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists: %s\n", cfgPath)
			}
			return nil
		},
	})

	return configCmd
}

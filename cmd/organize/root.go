package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// options holds the values of the persistent flags
type options struct {
	configPath string
	verbose    bool
	dir        string
	dest       string
	overwrite  bool
	dryRun     bool
	output     string
	file       string
	tui        bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "organize",
		Short: "Sort the files of a directory into category folders",
		Long: `Organize moves the files of the current directory into folders in your
home directory, by file type or by a keyword in the file name:
  - .jpg, .png and other images go to Pictures
  - .pdf, .txt and other documents go to Documents
  - archives, audio, video, executables and code each get their own folder

Run without a subcommand for the interactive menu.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if opts.tui {
				return a.runTUI(cmd.Context())
			}
			return a.runMenu(cmd.Context(), cmd.InOrStdin())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file path")
	flags.BoolVar(&opts.verbose, "verbose", false, "verbose output")
	flags.StringVar(&opts.dir, "dir", "", "directory to organize (default: current directory)")
	flags.StringVar(&opts.dest, "dest", "", "where category folders are created (default: home directory)")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "replace files that already exist in a destination folder")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would be moved without moving anything")
	flags.StringVar(&opts.output, "output", "", "output format (summary, table, json, yaml)")
	flags.StringVar(&opts.file, "file", "", "also save the report to a file")

	rootCmd.Flags().BoolVar(&opts.tui, "tui", false, "use the full-screen terminal UI")

	rootCmd.AddCommand(newAllCommand(opts))
	rootCmd.AddCommand(newTypeCommand(opts))
	rootCmd.AddCommand(newKeywordCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

package main

import (
	"github.com/spf13/cobra"

	"filesorter/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var opts organizeOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "filesorter --dir DIR",
		Short: "Sort the files of a directory into folders by extension",
		Long: "filesorter moves every file directly inside DIR into the folder of the first\n" +
			"rule whose extensions contain the file's extension. With --deduplicate,\n" +
			"byte-identical copies are deleted first, keeping the first path in name order.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultConfigName, "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Override the log format (console, json)")

	rootCmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to organize")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would happen without touching any file")
	rootCmd.Flags().BoolVar(&opts.deduplicate, "deduplicate", false, "Delete byte-identical duplicates before organizing")
	rootCmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a summary table after the run")
	_ = rootCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(newRulesCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

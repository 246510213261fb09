package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"filesorter/internal/config"
	"filesorter/internal/fault"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := writeSampleConfig(targetPath, overwrite)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the [rules] tables, then preview the match order with 'filesorter rules'.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.resolvedConfigPath())
			fmt.Fprintf(out, "Rules: %d\n", len(cfg.Rules))
			fmt.Fprintf(out, "Ignore patterns: %s\n", yesNo(len(cfg.Ignore) > 0))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

// writeSampleConfig resolves target (default config.toml in the working
// directory) and writes the embedded sample there.
func writeSampleConfig(target string, overwrite bool) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		target = config.DefaultConfigName
	}
	resolved, err := config.ExpandPath(target)
	if err != nil {
		return "", fault.Wrap(fault.ErrConfiguration, "config", "resolve path", target, err)
	}

	switch _, statErr := os.Stat(resolved); {
	case statErr == nil && !overwrite:
		return "", fault.Wrap(fault.ErrConfiguration, "config", "init",
			fmt.Sprintf("config file already exists at %s (use --overwrite to replace it)", resolved), nil)
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
		return "", fault.Wrap(fault.ErrConfiguration, "config", "check path", resolved, statErr)
	}

	if err := config.CreateSample(resolved); err != nil {
		return "", fault.Wrap(fault.ErrFileIO, "config", "create sample", resolved, err)
	}
	return resolved, nil
}

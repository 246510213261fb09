package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRulesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the rules in the order they are matched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n", ctx.resolvedConfigPath())

			rules := cfg.RuleSet()
			if len(rules) == 0 {
				fmt.Fprintln(out, "No rules configured; every file will be left in place.")
			} else {
				rows := make([][]string, 0, len(rules))
				for i, rule := range rules {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						rule.Folder,
						strconv.Itoa(rule.Priority),
						strings.Join(rule.Extensions, ", "),
					})
				}
				fmt.Fprint(out, renderTable(tableSpec{
					Headers: []string{"#", "Folder", "Priority", "Extensions"},
					Rows:    rows,
					Aligns:  []columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				}))
			}
			if len(cfg.Ignore) > 0 {
				fmt.Fprintf(out, "Ignored names: %s\n", strings.Join(cfg.Ignore, ", "))
			}
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"spdxdiff/internal/report"
	"spdxdiff/internal/textcache"
)

const adHocGroupName = "ad-hoc"

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "diff <license-id> <license-id> [license-id...]",
		Short: "Compare the wording of specific licenses",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withLockedCache(func(cache *textcache.Cache) error {
				driver := report.NewDriver(cache, logger, report.Options{})
				result := driver.Diff(cmd.Context(), args)

				out := cmd.OutOrStdout()
				header := report.HeaderColor(out, cfg.Report.Color && !noColor)
				report.WriteGroup(out, header, adHocGroupName, args, result)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored group headers")
	return cmd
}

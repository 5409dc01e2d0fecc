package main

import (
	"github.com/spf13/cobra"

	"spdxdiff/internal/logging"
	"spdxdiff/internal/report"
	"spdxdiff/internal/textcache"
)

type reportFlags struct {
	include []string
	noColor bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.include, "include", nil, "Only report groups whose name, prefix, or member matches this glob (repeatable)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored group headers")
}

func (f *reportFlags) options(ctx *commandContext) (report.Options, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return report.Options{}, err
	}
	opts := report.Options{
		Include: cfg.Report.Include,
		Color:   cfg.Report.Color && !f.noColor,
	}
	if len(f.include) > 0 {
		opts.Include = f.include
	}
	return opts, nil
}

func newReportCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print common and unique words for every license group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, ctx, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runReport(cmd *cobra.Command, ctx *commandContext, flags *reportFlags) error {
	opts, err := flags.options(ctx)
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	client, err := ctx.catalogClient()
	if err != nil {
		return err
	}
	registry, err := client.FetchRegistry(cmd.Context())
	if err != nil {
		logging.ErrorWithContext(logger, "spdx catalog unavailable", "catalog_fetch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check network access or spdx.catalog_url"))
		return err
	}

	return ctx.withLockedCache(func(cache *textcache.Cache) error {
		driver := report.NewDriver(cache, logger, opts)
		return driver.Run(cmd.Context(), registry, cmd.OutOrStdout())
	})
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"spdxdiff/internal/grouping"
	"spdxdiff/internal/report"
)

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List license groups without fetching any texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			patterns := cfg.Report.Include
			if len(include) > 0 {
				patterns = include
			}
			client, err := ctx.catalogClient()
			if err != nil {
				return err
			}
			registry, err := client.FetchRegistry(cmd.Context())
			if err != nil {
				return err
			}
			// Grouping needs no texts, so no cache is opened here.
			driver := report.NewDriver(nil, nil, report.Options{Include: patterns})
			groups, err := driver.Groups(registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No license groups")
				return nil
			}
			fmt.Fprintln(out, renderGroupsTable(groups))
			fmt.Fprintf(out, "%d groups from %d licenses\n", len(groups), registry.Len())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&include, "include", nil, "Only list groups whose name, prefix, or member matches this glob (repeatable)")
	return cmd
}

func renderGroupsTable(groups []grouping.Group) string {
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, []string{
			group.Name,
			group.Prefix,
			strconv.Itoa(len(group.Members)),
			strings.Join(group.Members, ", "),
		})
	}
	return renderTable(
		[]string{"Group", "Prefix", "Count", "Members"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"spdxdiff/internal/textcache"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <license-id>",
		Short: "Print a license text, downloading it into the cache if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return ctx.withLockedCache(func(cache *textcache.Cache) error {
				text := cache.Get(cmd.Context(), id)
				if text == "" {
					return fmt.Errorf("license text for %s is unavailable", id)
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}
}

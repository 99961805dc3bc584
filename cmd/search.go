package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logofetch/logofetch/internal/resolver"
)

func newSearchCmd() *cobra.Command {
	var (
		category string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the curated company database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := buildResolver(buildClient())
			results := res.Search(args[0], resolver.SearchOptions{
				Category: category,
				Limit:    limit,
			})
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "restrict results to one category")
	cmd.Flags().IntVar(&limit, "limit", resolver.DefaultSearchLimit, "maximum results")
	return cmd
}

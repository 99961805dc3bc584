package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logofetch/logofetch/internal/logo"
)

func newBulkCmd() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "bulk <name>...",
		Short: "Fetch logos for many companies concurrently",
		Long: `Runs independent resolve+fetch chains for every name with a fixed
concurrency cap. One item's failure never affects its siblings; each
item reports its own attempt log.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logicalSize, ok := parseSizeFlag(size)
			if !ok {
				return fmt.Errorf("invalid size %q: must be small, medium, or large", size)
			}

			coord, closeStore, err := buildCoordinator(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			results := coord.Run(cmd.Context(), args, logicalSize)
			succeeded := 0
			for _, item := range results {
				if item.Fetch.Success {
					succeeded++
				}
			}
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d succeeded\n", succeeded, len(results))
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", string(logo.SizeMedium), "logical logo size (small, medium, large)")
	return cmd
}

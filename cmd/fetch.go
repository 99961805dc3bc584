package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logofetch/logofetch/internal/logo"
)

func newFetchCmd() *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "fetch <name>",
		Short: "Resolve one company and download its logo",
		Long: `Resolves the given company name and runs the source cascade until one
source returns a validated image, then writes it under the configured
sink directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logicalSize, ok := parseSizeFlag(size)
			if !ok {
				return fmt.Errorf("invalid size %q: must be small, medium, or large", size)
			}

			client := buildClient()
			resolved := buildResolver(client).Resolve(cmd.Context(), args[0])
			result := buildPipeline(client).FetchLogo(cmd.Context(), resolved.Domain, resolved.Company, logicalSize)

			for _, attempt := range result.Attempts {
				status := "failed"
				if attempt.Success {
					status = "ok"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %-7s %4dms  %s\n",
					attempt.Source, status, attempt.DurationMs, attempt.Error)
			}
			if !result.Success {
				return fmt.Errorf("no logo found for %q: %s", args[0], result.Error)
			}

			logoSink, err := buildSink()
			if err != nil {
				return err
			}
			path, err := logoSink.Save(cmd.Context(), resolved.Company, result.Logo.Info, result.Logo.Data)
			if err != nil {
				return fmt.Errorf("save logo: %w", err)
			}
			logger.Info("logo saved",
				zap.String("company", resolved.Company),
				zap.String("path", path),
				zap.String("source", result.Logo.Source),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d bytes) -> %s\n",
				resolved.Domain, result.Logo.Info.Format, result.Logo.Info.SizeBytes, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", string(logo.SizeMedium), "logical logo size (small, medium, large)")
	return cmd
}

func parseSizeFlag(raw string) (logo.Size, bool) {
	switch logo.Size(raw) {
	case "":
		return logo.SizeMedium, true
	case logo.SizeSmall, logo.SizeMedium, logo.SizeLarge:
		return logo.Size(raw), true
	default:
		return "", false
	}
}

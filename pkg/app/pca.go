package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KevinM0ney/thesis/pkg/pipeline"
	"github.com/KevinM0ney/thesis/pkg/report"
)

func newPCACmd(loadConfig configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pca <csv>",
		Short: "Principal component analysis of a numeric table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			components, _ := cmd.Flags().GetInt("components")
			if !cmd.Flags().Changed("components") {
				components = cfg.Components
			}
			threshold, _ := cmd.Flags().GetFloat64("threshold")
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.VarianceThreshold
			}
			plotDir, _ := cmd.Flags().GetString("plots")
			if plotDir == "" {
				plotDir = cfg.PlotDir
			}
			required, _ := cmd.Flags().GetStringSlice("require")

			rep, err := pipeline.RunPCA(pipeline.PCAOptions{
				Path:              args[0],
				Comma:             cfg.Comma(),
				Required:          required,
				Components:        components,
				VarianceThreshold: threshold,
				PlotDir:           plotDir,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render(rep, 20))
			return nil
		},
	}
	cmd.Flags().Int("components", 0, "axes to retain (0 = cover variance threshold)")
	cmd.Flags().Float64("threshold", 0, "cumulative variance threshold for automatic selection")
	cmd.Flags().String("plots", "", "directory for plot artifacts (empty = no plots)")
	cmd.Flags().StringSlice("require", nil, "columns that must be present")
	return cmd
}

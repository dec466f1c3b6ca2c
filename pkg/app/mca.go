package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KevinM0ney/thesis/pkg/pipeline"
	"github.com/KevinM0ney/thesis/pkg/report"
)

func newMCACmd(loadConfig configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mca <csv>",
		Short: "Multiple correspondence analysis of a categorical table",
		Long: `mca encodes the categorical variables into a complete disjunctive table
and decomposes it. With --row-var and --col-var the table is cross-tabulated
into a contingency matrix first and simple correspondence analysis runs on
the counts instead.`,
		Args: cobra.ExactArgs(1),
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
			minCount, _ := cmd.Flags().GetInt("min-count")
			if !cmd.Flags().Changed("min-count") {
				minCount = cfg.MinCategoryCount
			}
			plotDir, _ := cmd.Flags().GetString("plots")
			if plotDir == "" {
				plotDir = cfg.PlotDir
			}
			textCol, _ := cmd.Flags().GetString("text-column")
			labelCol, _ := cmd.Flags().GetString("label-column")
			columns, _ := cmd.Flags().GetStringSlice("columns")
			rowVar, _ := cmd.Flags().GetString("row-var")
			colVar, _ := cmd.Flags().GetString("col-var")

			stopwords, err := loadStopwords(cfg.StopwordFile)
			if err != nil {
				return err
			}

			var rep *report.Report
			switch {
			case rowVar != "" && colVar != "":
				rep, err = pipeline.RunCA(pipeline.CAOptions{
					Path:              args[0],
					Comma:             cfg.Comma(),
					RowVar:            rowVar,
					ColVar:            colVar,
					TextColumn:        textCol,
					Stopwords:         stopwords,
					Components:        components,
					VarianceThreshold: threshold,
					PlotDir:           plotDir,
				})
			case rowVar != "" || colVar != "":
				return fmt.Errorf("mca: --row-var and --col-var must be set together")
			default:
				rep, err = pipeline.RunMCA(pipeline.MCAOptions{
					Path:              args[0],
					Comma:             cfg.Comma(),
					Columns:           columns,
					TextColumn:        textCol,
					LabelColumn:       labelCol,
					Stopwords:         stopwords,
					MinCount:          minCount,
					Components:        components,
					VarianceThreshold: threshold,
					PlotDir:           plotDir,
				})
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render(rep, 20))
			return nil
		},
	}
	cmd.Flags().Int("components", 0, "axes to retain (0 = cover inertia threshold)")
	cmd.Flags().Float64("threshold", 0, "cumulative inertia threshold for automatic selection")
	cmd.Flags().Int("min-count", 0, "drop category levels observed fewer times")
	cmd.Flags().String("text-column", "", "free-text column to tokenize into terms")
	cmd.Flags().String("label-column", "", "column naming observations in output")
	cmd.Flags().StringSlice("columns", nil, "restrict analysis to these variables")
	cmd.Flags().String("row-var", "", "cross-tabulate this variable against --col-var and run simple CA")
	cmd.Flags().String("col-var", "", "column variable of the contingency table")
	cmd.Flags().String("plots", "", "directory for plot artifacts (empty = no plots)")
	return cmd
}

// loadStopwords reads one stopword per line; empty path keeps the built-in
// Italian list (signalled by nil).
func loadStopwords(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	var words []string
	for _, line := range strings.Split(string(b), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

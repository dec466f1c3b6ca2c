package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/describe"
	"github.com/KevinM0ney/thesis/pkg/visual"
)

func newDescribeCmd(loadConfig configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <csv>",
		Short: "Descriptive statistics of a dataset",
		Long: `describe prints frequency tables for a categorical column, optionally
split by a grouping column, or five-number summaries when --numeric is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			numeric, _ := cmd.Flags().GetBool("numeric")
			column, _ := cmd.Flags().GetString("column")
			groupBy, _ := cmd.Flags().GetString("group-by")
			topK, _ := cmd.Flags().GetInt("top")
			minCount, _ := cmd.Flags().GetInt("min-count")
			plotDir, _ := cmd.Flags().GetString("plots")
			if plotDir == "" {
				plotDir = cfg.PlotDir
			}
			out := cmd.OutOrStdout()

			if numeric {
				d, err := dataset.LoadNumeric(args[0], dataset.WithComma(cfg.Comma()))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-16s %-10s %-10s %-10s %-10s %-10s %-10s %-10s\n",
					"Column", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max")
				for _, s := range describe.Summarize(d) {
					fmt.Fprintf(out, "%-16s %-10.4f %-10.4f %-10.4f %-10.4f %-10.4f %-10.4f %-10.4f\n",
						s.Column, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
				}
				return nil
			}

			if column == "" {
				return fmt.Errorf("describe: --column is required for categorical tables")
			}
			d, err := dataset.LoadCategorical(args[0], dataset.WithComma(cfg.Comma()))
			if err != nil {
				return err
			}

			if groupBy != "" {
				groups, err := describe.GroupedFrequencies(d, column, groupBy, minCount, topK)
				if err != nil {
					return err
				}
				for g, rows := range groups {
					fmt.Fprintf(out, "%s = %s\n", groupBy, g)
					for _, r := range rows {
						fmt.Fprintf(out, "  %-24s %d\n", r.Value, r.Count)
					}
				}
				return nil
			}

			rows, err := describe.Frequencies(d, column, topK)
			if err != nil {
				return err
			}
			for _, r := range rows {
				fmt.Fprintf(out, "%-24s %d\n", r.Value, r.Count)
			}

			if plotDir != "" {
				names := make([]string, len(rows))
				values := make([]float64, len(rows))
				for i, r := range rows {
					names[i] = r.Value
					values[i] = float64(r.Count)
				}
				path := filepath.Join(plotDir, "frequencies_"+column+".png")
				if err := visual.BarChart(names, values, "Top "+column, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("numeric", false, "treat the table as numeric and print summaries")
	cmd.Flags().String("column", "", "categorical column to count")
	cmd.Flags().String("group-by", "", "split counts by this column")
	cmd.Flags().Int("top", 20, "levels to keep per table")
	cmd.Flags().Int("min-count", 1, "minimum count within a group")
	cmd.Flags().String("plots", "", "directory for a bar chart of the counts")
	return cmd
}

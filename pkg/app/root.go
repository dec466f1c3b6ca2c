// Package app holds the cobra commands driving the analysis pipelines. The
// commands are thin invocation glue; everything analytical lives in the
// library packages.
package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KevinM0ney/thesis/pkg/config"
)

// configLoader resolves the active configuration for a command run.
type configLoader func() (*config.Analysis, error)

// NewRootCmd builds the thesis CLI. The command tree is constructed per
// call so sequential Execute runs never see each other's flag values.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "thesis",
		Short: "Multivariate analyses for the thesis datasets",
		Long: `thesis runs the two analyses of the study: principal component
analysis on the survey-derived numeric dataset and multiple correspondence
analysis on the categorical dataset built from newspaper articles.

Examples:
  # PCA on the numeric survey table, plots into ./figures
  thesis pca df_numeric.csv --plots figures

  # MCA on the Italian article dataset, filtering rare terms
  thesis mca articoli_di_giornale_ita_mca.csv --text-column titolo --min-count 10

  # Frequency table of a categorical column
  thesis describe articoli_di_giornale_ita_mca.csv --column giornale`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./thesis.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	loadConfig := func() (*config.Analysis, error) {
		return config.Load(cfgFile)
	}
	root.AddCommand(newPCACmd(loadConfig))
	root.AddCommand(newMCACmd(loadConfig))
	root.AddCommand(newDescribeCmd(loadConfig))
	return root
}

// Package pipeline wires the analysis flows end to end. Each flow is a
// strict linear sequence over immutable data: load, preprocess, fit, report,
// plot. There is no shared state between flows, no retry and no partial
// recovery; a failing stage fails the run.
package pipeline

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/describe"
	"github.com/KevinM0ney/thesis/pkg/model"
	"github.com/KevinM0ney/thesis/pkg/preprocess"
	"github.com/KevinM0ney/thesis/pkg/report"
	"github.com/KevinM0ney/thesis/pkg/visual"
)

// PCAOptions configures the numeric flow.
type PCAOptions struct {
	// Path of the comma-delimited numeric CSV (header row required).
	Path string
	// Comma overrides the delimiter; zero keeps ','.
	Comma rune
	// Required columns; loading fails when one is absent.
	Required []string
	// Components fixes the number of reported axes; <= 0 lets the
	// cumulative variance threshold decide.
	Components int
	// VarianceThreshold for automatic axis selection; <= 0 uses the
	// reporter default.
	VarianceThreshold float64
	// PlotDir, when set, receives pca_scores.png and pca_biplot.png.
	PlotDir string
}

// RunPCA executes the numeric flow: load, standardize, fit, report, plot.
func RunPCA(opt PCAOptions) (*report.Report, error) {
	log := logrus.WithField("flow", "pca")

	var lopts []dataset.Option
	if opt.Comma != 0 {
		lopts = append(lopts, dataset.WithComma(opt.Comma))
	}
	if len(opt.Required) > 0 {
		lopts = append(lopts, dataset.WithRequired(opt.Required...))
	}
	d, err := dataset.LoadNumeric(opt.Path, lopts...)
	if err != nil {
		return nil, err
	}
	n, p := d.Dims()
	log.WithFields(logrus.Fields{"rows": n, "cols": p}).Info("dataset loaded")

	scaled, err := preprocess.NewStandardScaler().FitTransform(d)
	if err != nil {
		return nil, err
	}

	fit, err := model.FitPCA(scaled)
	if err != nil {
		return nil, err
	}
	log.WithField("axes", len(fit.Eigenvalues)).Info("decomposition complete")

	rep := report.FromPCA(fit, opt.Components, opt.VarianceThreshold)

	if opt.PlotDir != "" && rep.Axes >= 2 {
		scores := filepath.Join(opt.PlotDir, "pca_scores.png")
		if err := visual.ScorePlot(rep.Observations, nil, "PCA scores",
			rep.AxisLabel(0), rep.AxisLabel(1), scores); err != nil {
			return nil, err
		}
		biplot := filepath.Join(opt.PlotDir, "pca_biplot.png")
		if err := visual.Biplot(rep.Observations, rep.Loadings, rep.VariableLabels,
			"PCA biplot", rep.AxisLabel(0), rep.AxisLabel(1), biplot); err != nil {
			return nil, err
		}
		log.WithField("dir", opt.PlotDir).Info("plots written")
	}
	return rep, nil
}

// MCAOptions configures the categorical flow.
type MCAOptions struct {
	Path     string
	Comma    rune
	Required []string
	// Columns restricts the analysis to these variables; empty keeps all.
	Columns []string
	// TextColumn, when set, is tokenized into a long-format "term" column
	// before encoding.
	TextColumn string
	// Stopwords for the tokenizer; nil uses the Italian default list.
	Stopwords []string
	// MinCount filters category levels observed fewer times.
	MinCount int
	// LabelColumn names observations in reports and plots; it is excluded
	// from the encoded variables.
	LabelColumn string

	Components        int
	VarianceThreshold float64
	// PlotDir, when set, receives mca_map.png.
	PlotDir string
}

// RunMCA executes the categorical flow: load, tokenize (optionally), encode
// into the complete disjunctive table, fit, report, plot.
func RunMCA(opt MCAOptions) (*report.Report, error) {
	log := logrus.WithField("flow", "mca")

	var lopts []dataset.Option
	if opt.Comma != 0 {
		lopts = append(lopts, dataset.WithComma(opt.Comma))
	}
	if len(opt.Required) > 0 {
		lopts = append(lopts, dataset.WithRequired(opt.Required...))
	}
	d, err := dataset.LoadCategorical(opt.Path, lopts...)
	if err != nil {
		return nil, err
	}
	n, p := d.Dims()
	log.WithFields(logrus.Fields{"rows": n, "cols": p}).Info("dataset loaded")

	if opt.TextColumn != "" {
		stop := opt.Stopwords
		if stop == nil {
			stop = preprocess.ItalianStopwords
		}
		d, err = preprocess.NewTokenizer(stop).ExpandColumn(d, opt.TextColumn)
		if err != nil {
			return nil, err
		}
		rows, _ := d.Dims()
		log.WithField("rows", rows).Info("text column expanded to terms")
	}

	labels, d, err := splitLabels(d, opt.LabelColumn)
	if err != nil {
		return nil, err
	}
	if len(opt.Columns) > 0 {
		d, err = selectColumns(d, opt.Columns)
		if err != nil {
			return nil, err
		}
	}

	ind, err := preprocess.Encode(d, opt.MinCount)
	if err != nil {
		return nil, err
	}
	if ind.Dropped > 0 {
		log.WithField("dropped", ind.Dropped).Info("rows removed by filtering")
	}

	var rowLabels []string
	if labels != nil {
		rowLabels = make([]string, len(ind.RowIndex))
		for i, idx := range ind.RowIndex {
			rowLabels[i] = labels[idx]
		}
	}
	fit, err := model.FitMCA(rowLabels, ind)
	if err != nil {
		return nil, err
	}
	log.WithField("axes", len(fit.Inertias)).Info("decomposition complete")

	rep := report.FromCorrespondence(fit, opt.Components, opt.VarianceThreshold)

	if opt.PlotDir != "" && rep.Axes >= 2 {
		path := filepath.Join(opt.PlotDir, "mca_map.png")
		if err := visual.SymmetricMap(rep.Observations, rep.ObservationLabels,
			rep.Loadings, rep.VariableLabels, "MCA symmetric map",
			rep.AxisLabel(0), rep.AxisLabel(1), path); err != nil {
			return nil, err
		}
		log.WithField("dir", opt.PlotDir).Info("plots written")
	}
	return rep, nil
}

// CAOptions configures simple correspondence analysis of a cross-tabulation
// of two categorical variables.
type CAOptions struct {
	Path     string
	Comma    rune
	Required []string
	// RowVar and ColVar name the variables to cross-tabulate.
	RowVar string
	ColVar string
	// TextColumn, when set, is tokenized into a long-format "term" column
	// before tabulation, so RowVar or ColVar may be "term".
	TextColumn string
	// Stopwords for the tokenizer; nil uses the Italian default list.
	Stopwords []string

	Components        int
	VarianceThreshold float64
	// PlotDir, when set, receives ca_map.png.
	PlotDir string
}

// RunCA executes the contingency flow: load, tokenize (optionally),
// cross-tabulate, fit, report, plot.
func RunCA(opt CAOptions) (*report.Report, error) {
	log := logrus.WithField("flow", "ca")

	var lopts []dataset.Option
	if opt.Comma != 0 {
		lopts = append(lopts, dataset.WithComma(opt.Comma))
	}
	if len(opt.Required) > 0 {
		lopts = append(lopts, dataset.WithRequired(opt.Required...))
	}
	d, err := dataset.LoadCategorical(opt.Path, lopts...)
	if err != nil {
		return nil, err
	}
	n, p := d.Dims()
	log.WithFields(logrus.Fields{"rows": n, "cols": p}).Info("dataset loaded")

	if opt.TextColumn != "" {
		stop := opt.Stopwords
		if stop == nil {
			stop = preprocess.ItalianStopwords
		}
		d, err = preprocess.NewTokenizer(stop).ExpandColumn(d, opt.TextColumn)
		if err != nil {
			return nil, err
		}
		rows, _ := d.Dims()
		log.WithField("rows", rows).Info("text column expanded to terms")
	}

	rowLabels, colLabels, counts, err := describe.Contingency(d, opt.RowVar, opt.ColVar)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"table": opt.RowVar + " x " + opt.ColVar,
		"rows":  len(rowLabels),
		"cols":  len(colLabels),
	}).Info("contingency table built")

	fit, err := model.FitCA(rowLabels, colLabels, counts)
	if err != nil {
		return nil, err
	}
	log.WithField("axes", len(fit.Inertias)).Info("decomposition complete")

	rep := report.FromCorrespondence(fit, opt.Components, opt.VarianceThreshold)

	if opt.PlotDir != "" && rep.Axes >= 2 {
		path := filepath.Join(opt.PlotDir, "ca_map.png")
		if err := visual.SymmetricMap(rep.Observations, rep.ObservationLabels,
			rep.Loadings, rep.VariableLabels, "CA symmetric map",
			rep.AxisLabel(0), rep.AxisLabel(1), path); err != nil {
			return nil, err
		}
		log.WithField("dir", opt.PlotDir).Info("plots written")
	}
	return rep, nil
}

// splitLabels pulls the label column out of the table, leaving the
// remaining variables for encoding.
func splitLabels(d *dataset.Categorical, labelCol string) ([]string, *dataset.Categorical, error) {
	if labelCol == "" {
		return nil, d, nil
	}
	j, err := d.ColumnIndex(labelCol)
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, len(d.Rows))
	out := &dataset.Categorical{}
	for i, c := range d.Columns {
		if i != j {
			out.Columns = append(out.Columns, c)
		}
	}
	for i, row := range d.Rows {
		labels[i] = row[j]
		next := make([]string, 0, len(row)-1)
		for k, v := range row {
			if k != j {
				next = append(next, v)
			}
		}
		out.Rows = append(out.Rows, next)
	}
	return labels, out, nil
}

// selectColumns keeps only the named variables, in the given order.
func selectColumns(d *dataset.Categorical, cols []string) (*dataset.Categorical, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		j, err := d.ColumnIndex(c)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}
	out := &dataset.Categorical{Columns: append([]string(nil), cols...)}
	for _, row := range d.Rows {
		next := make([]string, len(idx))
		for i, j := range idx {
			next[i] = row[j]
		}
		out.Rows = append(out.Rows, next)
	}
	return out, nil
}

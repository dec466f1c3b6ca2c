// Package visual renders the plot artifacts of both flows with gonum/plot:
// score scatters and biplots for PCA, symmetric maps for MCA, bar charts for
// the descriptive tables. Every function writes an image file and returns
// nothing a later stage consumes.
package visual

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	observationColor = color.RGBA{B: 255, A: 255, R: 50, G: 50}
	categoryColor    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// ScorePlot scatters observations on the first two axes.
func ScorePlot(coords [][]float64, labels []string, title, xLabel, yLabel, path string) error {
	p, err := newPlane(title, xLabel, yLabel)
	if err != nil {
		return err
	}
	if err := addPoints(p, coords, labels, observationColor, draw.CircleGlyph{}); err != nil {
		return err
	}
	return save(p, path)
}

// Biplot overlays variable loading vectors on the observation scores, the
// classic PCA reading aid: direction shows association, length contribution.
func Biplot(scores, loadings [][]float64, varLabels []string, title, xLabel, yLabel, path string) error {
	p, err := newPlane(title, xLabel, yLabel)
	if err != nil {
		return err
	}
	if err := addPoints(p, scores, nil, observationColor, draw.CircleGlyph{}); err != nil {
		return err
	}

	// Scale arrows to the score cloud so they stay visible.
	scale := arrowScale(scores, loadings)
	for j, l := range loadings {
		if len(l) < 2 {
			return fmt.Errorf("visual: biplot needs at least two axes")
		}
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: l[0] * scale, Y: l[1] * scale}})
		if err != nil {
			return err
		}
		line.Color = categoryColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: l[0] * scale, Y: l[1] * scale}},
			Labels: []string{varLabels[j]},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return save(p, path)
}

// SymmetricMap draws observations and categories on one plane, the standard
// MCA presentation: proximity between the two point sets suggests
// association.
func SymmetricMap(rowCoords [][]float64, rowLabels []string, colCoords [][]float64, colLabels []string, title, xLabel, yLabel, path string) error {
	p, err := newPlane(title, xLabel, yLabel)
	if err != nil {
		return err
	}
	if err := addPoints(p, rowCoords, rowLabels, observationColor, draw.CircleGlyph{}); err != nil {
		return err
	}
	if err := addPoints(p, colCoords, colLabels, categoryColor, draw.PyramidGlyph{}); err != nil {
		return err
	}
	return save(p, path)
}

// BarChart renders a frequency table as vertical bars.
func BarChart(names []string, values []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = observationColor
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = draw.XRight
	return save(p, path)
}

func newPlane(title, xLabel, yLabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p, nil
}

func addPoints(p *plot.Plot, coords [][]float64, labels []string, c color.RGBA, glyph draw.GlyphDrawer) error {
	pts := make(plotter.XYs, len(coords))
	for i, row := range coords {
		if len(row) < 2 {
			return fmt.Errorf("visual: need at least two axes to plot, got %d", len(row))
		}
		pts[i] = plotter.XY{X: row[0], Y: row[1]}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.Color = c
	s.Shape = glyph
	s.Radius = vg.Points(3)
	p.Add(s)

	if labels != nil {
		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}
	return nil
}

func arrowScale(scores, loadings [][]float64) float64 {
	maxScore, maxLoad := 0.0, 0.0
	for _, s := range scores {
		for _, v := range s[:2] {
			if a := abs(v); a > maxScore {
				maxScore = a
			}
		}
	}
	for _, l := range loadings {
		if len(l) < 2 {
			continue
		}
		for _, v := range l[:2] {
			if a := abs(v); a > maxLoad {
				maxLoad = a
			}
		}
	}
	if maxLoad == 0 {
		return 1
	}
	return 0.8 * maxScore / maxLoad
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("visual: save %s: %w", path, err)
	}
	return nil
}

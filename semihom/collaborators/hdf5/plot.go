package hdf5

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSizeHistogram renders a bar chart of a catalogue's composition
// by semigroup size to path, as a diagnostic aid when building up a
// large catalogue (e.g. to notice that one size band is
// under-represented before spending time computing its homology).
// This is optional scaffolding, not part of the core computation: call
// it only when a diagnostic output path was explicitly requested.
func PlotSizeHistogram(records []Record, path string) error {
	hist := SizeHistogram(records)
	keys := sizeHistogramKeys(hist)

	p := plot.New()
	p.Title.Text = "catalogue composition by semigroup size"
	p.Y.Label.Text = "records"
	p.X.Label.Text = "|S|"

	values := make(plotter.Values, len(keys))
	labels := make([]string, len(keys))
	for i, k := range keys {
		values[i] = float64(hist[k])
		labels[i] = formatSize(k)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("hdf5: building bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("hdf5: saving plot to %s: %w", path, err)
	}
	return nil
}

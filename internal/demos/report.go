package demos

import (
	"github.com/cesco345/molecular-biology-meanderings/internal/plotdata"
)

// Report is the output of one demonstration: shapes, summary statistics and
// the numeric series an external renderer would draw.
type Report struct {
	Name        string
	InputShape  [2]int
	OutputShape [2]int
	WeightNorm  float64
	ColumnMeans []float64

	Histogram *plotdata.HistogramSeries
	Heatmap   *plotdata.HeatmapSeries
	Box       *plotdata.BoxSeries
	Scatter   *plotdata.ScatterSeries

	// Set by the dimensionality-reduction demonstration only.
	ExplainedVariance []float64
	AffineRetained    float64
	PCARetained       float64
}

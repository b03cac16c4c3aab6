// Package plotdata builds the plain numeric series the external renderers
// consume: histogram buckets, heatmap matrices, per-column box statistics
// and scatter pairs. No rendering happens here.
package plotdata

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput indicates an empty value set.
	ErrEmptyInput = errors.New("plotdata: input must be non-empty")
	// ErrBadBins indicates a non-positive histogram bucket count.
	ErrBadBins = errors.New("plotdata: bucket count must be at least 1")
	// ErrRagged indicates matrix rows of differing lengths.
	ErrRagged = errors.New("plotdata: all rows must have the same length")
	// ErrLengthMismatch indicates scatter inputs of differing lengths.
	ErrLengthMismatch = errors.New("plotdata: x and y must have the same length")
)

// HistogramSeries holds bucket edges (len bins+1) and per-bucket counts.
type HistogramSeries struct {
	Edges  []float64
	Counts []int
}

// Histogram buckets values into bins equal-width buckets over [min, max].
func Histogram(values []float64, bins int) (*HistogramSeries, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if bins < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBins, bins)
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := bins - 1
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}
	return &HistogramSeries{Edges: edges, Counts: counts}, nil
}

// HeatmapSeries holds a rectangular value matrix and its range.
type HeatmapSeries struct {
	Values [][]float64
	Min    float64
	Max    float64
}

// Heatmap validates rectangularity and records the value range.
func Heatmap(values [][]float64) (*HeatmapSeries, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(values[0])
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return &HeatmapSeries{Values: values, Min: lo, Max: hi}, nil
}

// BoxSeries holds five-number summaries, one entry per matrix column.
type BoxSeries struct {
	Min    []float64
	Q1     []float64
	Median []float64
	Q3     []float64
	Max    []float64
}

// Box computes a five-number summary for every column of a rectangular matrix.
func Box(values [][]float64) (*BoxSeries, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
	}

	s := &BoxSeries{
		Min:    make([]float64, cols),
		Q1:     make([]float64, cols),
		Median: make([]float64, cols),
		Q3:     make([]float64, cols),
		Max:    make([]float64, cols),
	}
	col := make([]float64, len(values))
	for j := 0; j < cols; j++ {
		for i := range values {
			col[i] = values[i][j]
		}
		sort.Float64s(col)
		s.Min[j] = col[0]
		s.Q1[j] = stat.Quantile(0.25, stat.Empirical, col, nil)
		s.Median[j] = stat.Quantile(0.5, stat.Empirical, col, nil)
		s.Q3[j] = stat.Quantile(0.75, stat.Empirical, col, nil)
		s.Max[j] = col[len(col)-1]
	}
	return s, nil
}

// ScatterSeries holds paired point coordinates.
type ScatterSeries struct {
	X []float64
	Y []float64
}

// Scatter pairs two equal-length coordinate vectors.
func Scatter(x, y []float64) (*ScatterSeries, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	return &ScatterSeries{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}, nil
}

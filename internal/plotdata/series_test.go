package plotdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesco345/molecular-biology-meanderings/internal/plotdata"
)

func TestHistogram(t *testing.T) {
	h, err := plotdata.Histogram([]float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5}, 4)
	require.NoError(t, err)
	require.Len(t, h.Edges, 5)
	require.Len(t, h.Counts, 4)

	var total int
	for _, c := range h.Counts {
		total += c
	}
	require.Equal(t, 8, total)
	assert.Equal(t, []int{2, 2, 2, 2}, h.Counts)
	assert.Equal(t, 0.0, h.Edges[0])
	assert.Equal(t, 3.5, h.Edges[4])
}

func TestHistogram_ConstantValues(t *testing.T) {
	h, err := plotdata.Histogram([]float64{2, 2, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Counts[2])
}

func TestHistogram_Errors(t *testing.T) {
	_, err := plotdata.Histogram(nil, 4)
	require.ErrorIs(t, err, plotdata.ErrEmptyInput)

	_, err = plotdata.Histogram([]float64{1}, 0)
	require.ErrorIs(t, err, plotdata.ErrBadBins)
}

func TestHeatmap(t *testing.T) {
	h, err := plotdata.Heatmap([][]float64{{1, -2}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, -2.0, h.Min)
	assert.Equal(t, 3.0, h.Max)
}

func TestHeatmap_Ragged(t *testing.T) {
	_, err := plotdata.Heatmap([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, plotdata.ErrRagged)
}

func TestBox(t *testing.T) {
	b, err := plotdata.Box([][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
		{4, 40},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10}, b.Min)
	assert.Equal(t, []float64{1, 10}, b.Q1)
	assert.Equal(t, []float64{2, 20}, b.Median)
	assert.Equal(t, []float64{3, 30}, b.Q3)
	assert.Equal(t, []float64{4, 40}, b.Max)
}

func TestBox_Errors(t *testing.T) {
	_, err := plotdata.Box(nil)
	require.ErrorIs(t, err, plotdata.ErrEmptyInput)

	_, err = plotdata.Box([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, plotdata.ErrRagged)
}

func TestScatter(t *testing.T) {
	s, err := plotdata.Scatter([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, s.X)
	require.Equal(t, []float64{3, 4}, s.Y)
}

func TestScatter_Errors(t *testing.T) {
	_, err := plotdata.Scatter(nil, nil)
	require.ErrorIs(t, err, plotdata.ErrEmptyInput)

	_, err = plotdata.Scatter([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, plotdata.ErrLengthMismatch)
}

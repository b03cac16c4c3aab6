package affine_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesco345/molecular-biology-meanderings/internal/affine"
	"github.com/cesco345/molecular-biology-meanderings/internal/dataset"
	"github.com/cesco345/molecular-biology-meanderings/internal/tensor"
)

func newProjector(t *testing.T, weights [][]float64, bias []float64) *affine.Projector {
	t.Helper()
	outDim, inDim := len(weights), len(weights[0])
	p, err := affine.New(inDim, outDim, bias != nil, tensor.Float64)
	require.NoError(t, err)

	flat := make([]float64, 0, outDim*inDim)
	for _, row := range weights {
		flat = append(flat, row...)
	}
	require.NoError(t, p.SetWeights(flat))
	if bias != nil {
		require.NoError(t, p.SetBias(bias))
	}
	return p
}

func forwardRows(t *testing.T, p *affine.Projector, x [][]float64) [][]float64 {
	t.Helper()
	in, err := tensor.FromRows(x)
	require.NoError(t, err)
	y, err := p.Forward(in)
	require.NoError(t, err)
	rows, err := y.Rows()
	require.NoError(t, err)
	return rows
}

// TestForward_Concrete checks the worked example: identity rows through a
// diagonal weight with bias [1,1].
func TestForward_Concrete(t *testing.T) {
	p := newProjector(t, [][]float64{{2, 0}, {0, 3}}, []float64{1, 1})
	got := forwardRows(t, p, [][]float64{{1, 0}, {0, 1}})
	require.Equal(t, [][]float64{{3, 1}, {1, 4}}, got)
}

// TestForward_ZeroBiasIsNoOp verifies that a zero bias reproduces the plain
// matrix product exactly.
func TestForward_ZeroBiasIsNoOp(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	x := dataset.Matrix(r, 8, 5)
	weights := dataset.Matrix(r, 3, 5)

	withZero := forwardRows(t, newProjector(t, weights, make([]float64, 3)), x)
	noBias := forwardRows(t, newProjector(t, weights, nil), x)
	require.Equal(t, noBias, withZero)

	// The BLAS slice path computes the same product up to rounding.
	blas, err := affine.Transform64(x, weights, nil)
	require.NoError(t, err)
	for i := range blas {
		for j := range blas[i] {
			assert.InDelta(t, blas[i][j], withZero[i][j], 1e-12)
		}
	}
}

// TestForward_BiasAdditivity verifies that the bias shifts every output row
// by exactly b.
func TestForward_BiasAdditivity(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	x := dataset.Matrix(r, 6, 4)
	weights := dataset.Matrix(r, 2, 4)
	bias := []float64{0.5, -1.25}

	biased := forwardRows(t, newProjector(t, weights, bias), x)
	plain := forwardRows(t, newProjector(t, weights, make([]float64, 2)), x)

	for i := range biased {
		for j := range biased[i] {
			assert.InDelta(t, bias[j], biased[i][j]-plain[i][j], 1e-12)
		}
	}
}

// TestForward_ShapeMismatch verifies eager validation: no partial result.
func TestForward_ShapeMismatch(t *testing.T) {
	p := newProjector(t, [][]float64{{1, 2, 3}}, nil)

	in, err := tensor.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	y, err := p.Forward(in)
	require.ErrorIs(t, err, affine.ErrShapeMismatch)
	require.Nil(t, y)
}

func TestSetBias_LengthMismatch(t *testing.T) {
	p, err := affine.New(3, 2, true, tensor.Float64)
	require.NoError(t, err)
	require.ErrorIs(t, p.SetBias([]float64{1, 2, 3}), affine.ErrShapeMismatch)
}

func TestSetWeights_LengthMismatch(t *testing.T) {
	p, err := affine.New(3, 2, true, tensor.Float64)
	require.NoError(t, err)
	require.ErrorIs(t, p.SetWeights(make([]float64, 5)), affine.ErrShapeMismatch)
}

func topIndices(values []float64, k int) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] > values[idx[b]] })
	return idx[:k]
}

// TestForward_Determinism runs the 100×1000 → 50 projection twice from the
// same seed and requires matching shapes and top-10 column-mean indices.
func TestForward_Determinism(t *testing.T) {
	run := func() ([]int, [2]int) {
		r := rand.New(rand.NewSource(1234))
		x := dataset.Matrix(r, 100, 1000)
		p := newProjector(t, reshape2D(dataset.RandomWeights(r, 50, 1000), 50, 1000), dataset.RandomBias(r, 50))
		rows := forwardRows(t, p, x)

		means := make([]float64, 50)
		for _, row := range rows {
			for j, v := range row {
				means[j] += v
			}
		}
		for j := range means {
			means[j] /= 100
		}
		return topIndices(means, 10), [2]int{len(rows), len(rows[0])}
	}

	top1, shape1 := run()
	top2, shape2 := run()
	require.Equal(t, [2]int{100, 50}, shape1)
	require.Equal(t, shape1, shape2)
	require.Equal(t, top1, top2)
}

func reshape2D(flat []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols]
	}
	return out
}

// TestForward_OutputDimStable applies the same parameters to batches of
// different row counts and requires the same output width.
func TestForward_OutputDimStable(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	weights := dataset.Matrix(r, 4, 6)
	p := newProjector(t, weights, dataset.RandomBias(r, 4))

	for _, n := range []int{1, 5, 17} {
		rows := forwardRows(t, p, dataset.Matrix(r, n, 6))
		require.Len(t, rows, n)
		require.Len(t, rows[0], 4)
	}
}

// TestForward_Float32 exercises the single-precision path.
func TestForward_Float32(t *testing.T) {
	p, err := affine.New(2, 2, true, tensor.Float32)
	require.NoError(t, err)
	require.NoError(t, p.SetWeights([]float32{2, 0, 0, 3}))
	require.NoError(t, p.SetBias([]float32{1, 1}))

	in, err := tensor.New([]int{2, 2}, tensor.Float32)
	require.NoError(t, err)
	copy(in.Data().Data().([]float32), []float32{1, 0, 0, 1})

	y, err := p.Forward(in)
	require.NoError(t, err)
	out, err := y.Float32s()
	require.NoError(t, err)
	require.Equal(t, []float32{3, 1, 1, 4}, out)

	assert.Greater(t, p.WeightNorm(), 0.0)
}

func TestForward_DtypeMismatch(t *testing.T) {
	p, err := affine.New(2, 2, true, tensor.Float32)
	require.NoError(t, err)

	in, err := tensor.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = p.Forward(in)
	require.ErrorIs(t, err, affine.ErrDtype)
}

func TestTransform64_Errors(t *testing.T) {
	cases := []struct {
		name string
		x    [][]float64
		a    [][]float64
		b    []float64
		err  error
	}{
		{"EmptyInput", [][]float64{}, [][]float64{{1}}, nil, affine.ErrEmptyMatrix},
		{"RaggedInput", [][]float64{{1, 2}, {3}}, [][]float64{{1, 2}}, nil, affine.ErrRagged},
		{"ColumnMismatch", [][]float64{{1, 2}}, [][]float64{{1, 2, 3}}, nil, affine.ErrShapeMismatch},
		{"BiasMismatch", [][]float64{{1, 2}}, [][]float64{{1, 2}}, []float64{1, 2}, affine.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			y, err := affine.Transform64(tc.x, tc.a, tc.b)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, y)
		})
	}
}

func TestTransform64_Concrete(t *testing.T) {
	y, err := affine.Transform64(
		[][]float64{{1, 0}, {0, 1}},
		[][]float64{{2, 0}, {0, 3}},
		[]float64{1, 1},
	)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {1, 4}}, y)
}

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cesco345/molecular-biology-meanderings/internal/tensor"
)

func TestFromRows(t *testing.T) {
	m, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, m.Shape())

	flat, err := m.Float64s()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, flat)
}

func TestFromRows_Errors(t *testing.T) {
	_, err := tensor.FromRows(nil)
	require.Error(t, err)

	_, err = tensor.FromRows([][]float64{{1, 2}, {3}})
	require.Error(t, err)
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := tensor.New([]int{0, 3}, tensor.Float64)
	require.Error(t, err)

	_, err = tensor.New(nil, tensor.Float64)
	require.Error(t, err)
}

func TestMatMul(t *testing.T) {
	a, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := tensor.FromRows([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	c, err := a.MatMul(b)
	require.NoError(t, err)
	rows, err := c.Rows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, rows)
}

func TestTranspose_DoesNotMutate(t *testing.T) {
	a, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	at, err := a.Transpose()
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, at.Shape())
	require.Equal(t, []int{2, 3}, a.Shape())

	rows, err := at.Rows()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rows)
}

func TestFloat64s_WrongDtype(t *testing.T) {
	a, err := tensor.New([]int{2, 2}, tensor.Float32)
	require.NoError(t, err)
	_, err = a.Float64s()
	require.Error(t, err)
}

func TestRows_Requires2D(t *testing.T) {
	a, err := tensor.New([]int{4}, tensor.Float64)
	require.NoError(t, err)
	_, err = a.Rows()
	require.Error(t, err)
}

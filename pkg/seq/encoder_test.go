package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesco345/molecular-biology-meanderings/pkg/seq"
)

func TestEncodeDecode_Roundtrip(t *testing.T) {
	ids, err := seq.Encode("ACGTAC")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0, 1}, ids)

	s, err := seq.Decode(ids)
	require.NoError(t, err)
	require.Equal(t, "ACGTAC", s)
}

func TestEncode_Lowercase(t *testing.T) {
	ids, err := seq.Encode("acgt")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, ids)
}

func TestEncode_Errors(t *testing.T) {
	_, err := seq.Encode("")
	require.ErrorIs(t, err, seq.ErrEmpty)

	_, err = seq.Encode("ACGN")
	require.ErrorIs(t, err, seq.ErrInvalidBase)
}

func TestDecode_Errors(t *testing.T) {
	_, err := seq.Decode(nil)
	require.ErrorIs(t, err, seq.ErrEmpty)

	_, err = seq.Decode([]int{0, 4})
	require.ErrorIs(t, err, seq.ErrInvalidIndex)
}

func TestOneHot(t *testing.T) {
	x, err := seq.OneHot([]string{"AC", "GT"})
	require.NoError(t, err)
	require.Equal(t, []int{2, 8}, x.Shape())

	rows, err := x.Rows()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 0, 1, 0, 0}, rows[0])
	require.Equal(t, []float64{0, 0, 1, 0, 0, 0, 0, 1}, rows[1])

	// Every row sums to the sequence length.
	for _, row := range rows {
		var sum float64
		for _, v := range row {
			sum += v
		}
		assert.Equal(t, 2.0, sum)
	}
}

func TestOneHot_Errors(t *testing.T) {
	_, err := seq.OneHot(nil)
	require.ErrorIs(t, err, seq.ErrEmpty)

	_, err = seq.OneHot([]string{"AC", "A"})
	require.ErrorIs(t, err, seq.ErrLengthMismatch)
}

// Package affine implements the affine projector y = x·Aᵗ + b over dense
// matrices. The projector is stateless apart from its parameters: Forward
// never mutates its input and the same parameters applied to any batch of
// matching width always produce the same output width.
package affine

import (
	"fmt"
	"math"

	"github.com/cesco345/molecular-biology-meanderings/internal/mathx"
	"github.com/cesco345/molecular-biology-meanderings/internal/tensor"
)

// Projector applies y = x·Aᵗ + b to every row of a batch.
type Projector struct {
	weight *tensor.Tensor // (outputDim, inputDim)
	bias   *tensor.Tensor // (outputDim), nil when constructed without bias
	dtype  tensor.Dtype
}

// New creates a projector with zeroed parameters.
func New(inputDim, outputDim int, withBias bool, dtype tensor.Dtype) (*Projector, error) {
	if inputDim < 1 || outputDim < 1 {
		return nil, fmt.Errorf("%w: dims (%d, %d)", ErrEmptyMatrix, inputDim, outputDim)
	}
	weight, err := tensor.New([]int{outputDim, inputDim}, dtype)
	if err != nil {
		return nil, fmt.Errorf("failed to create weight tensor: %v", err)
	}

	var bias *tensor.Tensor
	if withBias {
		bias, err = tensor.New([]int{outputDim}, dtype)
		if err != nil {
			return nil, fmt.Errorf("failed to create bias tensor: %v", err)
		}
	}

	return &Projector{
		weight: weight,
		bias:   bias,
		dtype:  dtype,
	}, nil
}

// InputDim returns the expected input column count.
func (p *Projector) InputDim() int { return p.weight.Shape()[1] }

// OutputDim returns the produced output column count.
func (p *Projector) OutputDim() int { return p.weight.Shape()[0] }

// SetWeights copies data into the weight matrix in row-major order. The
// slice element type must match the projector dtype.
func (p *Projector) SetWeights(data interface{}) error {
	return fill(p.weight, data, p.OutputDim()*p.InputDim())
}

// SetBias copies data into the bias vector.
func (p *Projector) SetBias(data interface{}) error {
	if p.bias == nil {
		return fmt.Errorf("affine: projector has no bias")
	}
	return fill(p.bias, data, p.OutputDim())
}

func fill(t *tensor.Tensor, data interface{}, want int) error {
	switch src := data.(type) {
	case []float64:
		dst, ok := t.Data().Data().([]float64)
		if !ok {
			return ErrDtype
		}
		if len(src) != want {
			return fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(src), want)
		}
		copy(dst, src)
	case []float32:
		dst, ok := t.Data().Data().([]float32)
		if !ok {
			return ErrDtype
		}
		if len(src) != want {
			return fmt.Errorf("%w: got %d values, want %d", ErrShapeMismatch, len(src), want)
		}
		copy(dst, src)
	default:
		return fmt.Errorf("affine: unsupported parameter type %T", data)
	}
	return nil
}

// Forward computes y = x·Aᵗ + b for a 2-D input of shape (n, inputDim),
// producing a new (n, outputDim) tensor. The input is never mutated.
func (p *Projector) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	shape := input.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: input must be 2D, got shape %v", ErrShapeMismatch, shape)
	}
	if shape[0] < 1 || shape[1] < 1 {
		return nil, fmt.Errorf("%w: input shape %v", ErrEmptyMatrix, shape)
	}
	if shape[1] != p.InputDim() {
		return nil, fmt.Errorf("%w: input has %d columns, weight has %d", ErrShapeMismatch, shape[1], p.InputDim())
	}
	if input.Dtype() != p.dtype {
		return nil, fmt.Errorf("%w: input %v, projector %v", ErrDtype, input.Dtype(), p.dtype)
	}

	wT, err := p.weight.Transpose()
	if err != nil {
		return nil, fmt.Errorf("transpose failed: %v", err)
	}
	output, err := input.MatMul(wT)
	if err != nil {
		return nil, fmt.Errorf("matmul failed: %v", err)
	}

	if p.bias != nil {
		if err := addBiasRows(output, p.bias, shape[0], p.OutputDim()); err != nil {
			return nil, fmt.Errorf("bias add failed: %v", err)
		}
	}

	return output, nil
}

// addBiasRows adds the bias vector to every row of a freshly produced
// (rows, cols) output tensor, in place.
func addBiasRows(out, bias *tensor.Tensor, rows, cols int) error {
	switch raw := out.Data().Data().(type) {
	case []float64:
		b := bias.Data().Data().([]float64)
		for i := 0; i < rows; i++ {
			offset := i * cols
			for j := 0; j < cols; j++ {
				raw[offset+j] += b[j]
			}
		}
	case []float32:
		b := bias.Data().Data().([]float32)
		for i := 0; i < rows; i++ {
			offset := i * cols
			for j := 0; j < cols; j++ {
				raw[offset+j] += b[j]
			}
		}
	default:
		return fmt.Errorf("unsupported dtype %T", raw)
	}
	return nil
}

// WeightNorm returns the Euclidean norm of the flattened weight matrix.
func (p *Projector) WeightNorm() float64 {
	switch raw := p.weight.Data().Data().(type) {
	case []float64:
		return mathx.L2Norm64(raw)
	case []float32:
		return float64(mathx.L2Norm32(raw))
	default:
		return math.NaN()
	}
}

// Transform64 applies y = x·Aᵗ + b to plain float64 slices through BLAS.
// X is (n, d) row-major, A is (outDim, d), bias has length outDim or is nil.
func Transform64(X [][]float64, A [][]float64, bias []float64) ([][]float64, error) {
	n, d, err := dims(X)
	if err != nil {
		return nil, err
	}
	outDim, ad, err := dims(A)
	if err != nil {
		return nil, err
	}
	if ad != d {
		return nil, fmt.Errorf("%w: input has %d columns, weight has %d", ErrShapeMismatch, d, ad)
	}
	if bias != nil && len(bias) != outDim {
		return nil, fmt.Errorf("%w: bias length %d, weight rows %d", ErrShapeMismatch, len(bias), outDim)
	}

	xf := flatten(X, n, d)
	af := flatten(A, outDim, d)
	yf := make([]float64, n*outDim)
	mathx.Gemm64NT(1, xf, n, d, af, outDim, d, 0, yf)

	Y := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := yf[i*outDim : (i+1)*outDim]
		if bias != nil {
			for j := range row {
				row[j] += bias[j]
			}
		}
		Y[i] = row
	}
	return Y, nil
}

func dims(m [][]float64) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	cols = len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
	}
	return len(m), cols, nil
}

func flatten(m [][]float64, rows, cols int) []float64 {
	out := make([]float64, 0, rows*cols)
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}

package tensor

import (
	"fmt"
	"sync"

	ggtensor "gorgonia.org/tensor"
)

// Tensor wraps a dense gorgonia tensor. All tensors live on the CPU.
type Tensor struct {
	data ggtensor.Tensor
	mu   sync.Mutex
}

// New creates a zero-filled tensor with the given shape and dtype.
func New(shape []int, dtype Dtype) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("tensor: shape must have at least one dimension")
	}
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("tensor: invalid dimension %d in shape %v", s, shape)
		}
	}
	data := ggtensor.New(ggtensor.WithShape(shape...), ggtensor.Of(dtype))
	return &Tensor{data: data}, nil
}

// FromRows creates a 2-D Float64 tensor from a rectangular slice of rows.
func FromRows(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("tensor: rows must be non-empty")
	}
	cols := len(rows[0])
	backing := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor: row %d has %d columns, want %d", i, len(row), cols)
		}
		backing = append(backing, row...)
	}
	data := ggtensor.New(ggtensor.WithShape(len(rows), cols), ggtensor.WithBacking(backing))
	return &Tensor{data: data}, nil
}

// Data returns the underlying tensor data
func (t *Tensor) Data() ggtensor.Tensor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// Shape returns the tensor shape
func (t *Tensor) Shape() []int {
	return t.data.Shape()
}

// Dtype returns the tensor data type
func (t *Tensor) Dtype() Dtype {
	return t.data.Dtype()
}

// At returns the value at coordinates
func (t *Tensor) At(coord ...int) (interface{}, error) {
	return t.data.At(coord...)
}

// SetAt sets the value at coordinates
func (t *Tensor) SetAt(v interface{}, coord ...int) error {
	return t.data.SetAt(v, coord...)
}

// Float64s returns a copy of the backing slice of a Float64 tensor.
func (t *Tensor) Float64s() ([]float64, error) {
	raw, ok := t.data.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("tensor: dtype is %v, not float64", t.Dtype())
	}
	out := make([]float64, len(raw))
	copy(out, raw)
	return out, nil
}

// Float32s returns a copy of the backing slice of a Float32 tensor.
func (t *Tensor) Float32s() ([]float32, error) {
	raw, ok := t.data.Data().([]float32)
	if !ok {
		return nil, fmt.Errorf("tensor: dtype is %v, not float32", t.Dtype())
	}
	out := make([]float32, len(raw))
	copy(out, raw)
	return out, nil
}

// Rows returns a 2-D Float64 tensor as a slice of row slices.
func (t *Tensor) Rows() ([][]float64, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("tensor: Rows requires a 2D tensor, got shape %v", shape)
	}
	flat, err := t.Float64s()
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, shape[0])
	for i := range rows {
		rows[i] = flat[i*shape[1] : (i+1)*shape[1]]
	}
	return rows, nil
}

// MatMul performs matrix multiplication
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	result, err := ggtensor.MatMul(t.data, other.data)
	if err != nil {
		return nil, err
	}
	return &Tensor{data: result}, nil
}

// Add performs element-wise addition
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	result, err := ggtensor.Add(t.data, other.data)
	if err != nil {
		return nil, err
	}
	return &Tensor{data: result}, nil
}

// Reshape reshapes the tensor
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	if err := t.data.Reshape(shape...); err != nil {
		return nil, err
	}
	return &Tensor{data: t.data}, nil
}

// Transpose transposes the tensor
func (t *Tensor) Transpose(axes ...int) (*Tensor, error) {
	// Work on a clone to avoid mutating the original tensor shape/view
	var d ggtensor.Tensor
	if c, ok := t.data.(ggtensor.Cloner); ok {
		d = c.Clone().(ggtensor.Tensor)
	} else {
		d = t.data
	}
	if err := d.T(axes...); err != nil {
		return nil, err
	}
	// Materialize the transpose so subsequent ops see the new layout
	if err := d.Transpose(); err != nil {
		return nil, err
	}
	return &Tensor{data: d}, nil
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	if c, ok := t.data.(ggtensor.Cloner); ok {
		return &Tensor{data: c.Clone().(ggtensor.Tensor)}
	}
	return &Tensor{data: t.data}
}

// Re-export selected gorgonia.org/tensor types and dtypes for convenience
type (
	Dense = ggtensor.Dense
	Dtype = ggtensor.Dtype
)

var (
	Float32 = ggtensor.Float32
	Float64 = ggtensor.Float64
)

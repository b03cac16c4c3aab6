package affine

import "errors"

var (
	// ErrShapeMismatch indicates the input column count does not match the
	// weight column count, or the bias length does not match the weight rows.
	ErrShapeMismatch = errors.New("affine: shape mismatch between input and parameters")
	// ErrEmptyMatrix indicates an input with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("affine: matrix must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("affine: all rows must have the same length")
	// ErrDtype indicates the input dtype does not match the projector dtype.
	ErrDtype = errors.New("affine: input dtype must match projector dtype")
)

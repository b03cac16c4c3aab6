// Package pca implements the variance-maximizing projector used as the
// comparison baseline for random affine projections: it projects data onto
// the directions of greatest variance and reports how much variance each
// retained axis explains.
package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrNotFitted indicates Transform was called before Fit.
	ErrNotFitted = errors.New("pca: transform called before fit")
	// ErrComponents indicates the requested component count is outside [1, min(n, d)].
	ErrComponents = errors.New("pca: component count out of range")
	// ErrDimensionMismatch indicates transformed data has a different width
	// than the fitted data.
	ErrDimensionMismatch = errors.New("pca: input width does not match fitted data")
	// ErrDecomposition indicates the principal component decomposition failed.
	ErrDecomposition = errors.New("pca: principal component decomposition failed")
)

// PCA fits an orthogonal projection onto the k directions of greatest
// variance. The zero value is not usable; construct with New.
type PCA struct {
	k       int
	inDim   int
	means   []float64
	vectors *mat.Dense // (d, min(n, d)) component directions, descending variance
	vars    []float64
	fitted  bool
}

// New returns a PCA that retains k components.
func New(k int) *PCA {
	return &PCA{k: k}
}

// Fit learns the component directions, per-axis variances and column means
// of x. It must be called before Transform.
func (p *PCA) Fit(x mat.Matrix) error {
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return fmt.Errorf("pca: input must be non-empty, got (%d, %d)", n, d)
	}
	limit := n
	if d < limit {
		limit = d
	}
	if p.k < 1 || p.k > limit {
		return fmt.Errorf("%w: k=%d with input (%d, %d)", ErrComponents, p.k, n, d)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return ErrDecomposition
	}
	p.vectors = pc.VectorsTo(nil)
	p.vars = pc.VarsTo(nil)

	p.means = make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		p.means[j] = stat.Mean(col, nil)
	}

	p.inDim = d
	p.fitted = true
	return nil
}

// Transform centers x with the fitted means and projects it onto the first
// k components, producing an (n, k) matrix.
func (p *PCA) Transform(x mat.Matrix) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	n, d := x.Dims()
	if d != p.inDim {
		return nil, fmt.Errorf("%w: got %d columns, fitted on %d", ErrDimensionMismatch, d, p.inDim)
	}

	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-p.means[j])
		}
	}

	var out mat.Dense
	out.Mul(centered, p.vectors.Slice(0, d, 0, p.k))
	return &out, nil
}

// FitTransform runs Fit followed by Transform on the same data.
func (p *PCA) FitTransform(x mat.Matrix) (*mat.Dense, error) {
	if err := p.Fit(x); err != nil {
		return nil, err
	}
	return p.Transform(x)
}

// ExplainedVarianceRatio returns, for each of the k retained axes, the
// fraction of total variance that axis explains.
func (p *PCA) ExplainedVarianceRatio() []float64 {
	if !p.fitted {
		return nil
	}
	var total float64
	for _, v := range p.vars {
		total += v
	}
	ratios := make([]float64, p.k)
	if total == 0 {
		return ratios
	}
	for i := 0; i < p.k; i++ {
		ratios[i] = p.vars[i] / total
	}
	return ratios
}

// TotalVariance returns the sum of per-column sample variances of x.
func TotalVariance(x mat.Matrix) float64 {
	n, d := x.Dims()
	col := make([]float64, n)
	var total float64
	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		total += stat.Variance(col, nil)
	}
	return total
}

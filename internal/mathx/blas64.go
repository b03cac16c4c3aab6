package mathx

import (
	"math"

	"gonum.org/v1/gonum/blas"
	b64 "gonum.org/v1/gonum/blas/blas64"
)

// Gemm64NN computes C = alpha*A*B + beta*C for row-major float64 matrices.
// A is (ar x ac), B is (br x bc) where ac==br. C is (ar x bc).
func Gemm64NN(alpha float64, A []float64, ar, ac int, B []float64, br, bc int, beta float64, C []float64) {
	a := b64.General{Rows: ar, Cols: ac, Data: A, Stride: ac}
	b := b64.General{Rows: br, Cols: bc, Data: B, Stride: bc}
	c := b64.General{Rows: ar, Cols: bc, Data: C, Stride: bc}
	b64.Gemm(blas.NoTrans, blas.NoTrans, alpha, a, b, beta, c)
}

// Gemm64NT computes C = alpha*A*B^T + beta*C for row-major float64 matrices.
func Gemm64NT(alpha float64, A []float64, ar, ac int, B []float64, br, bc int, beta float64, C []float64) {
	// A: ar x ac, B: br x bc, C: ar x br
	a := b64.General{Rows: ar, Cols: ac, Data: A, Stride: ac}
	b := b64.General{Rows: br, Cols: bc, Data: B, Stride: bc}
	c := b64.General{Rows: ar, Cols: br, Data: C, Stride: br}
	b64.Gemm(blas.NoTrans, blas.Trans, alpha, a, b, beta, c)
}

// L2Norm64 returns the Euclidean norm of v.
func L2Norm64(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

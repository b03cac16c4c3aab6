// Package dataset generates the seeded synthetic biological matrices the
// demonstrations project: gene expression, protein residue features, DNA
// sequences, drug and cell-line features, and metabolite concentrations.
// Every generator is deterministic given its *rand.Rand.
package dataset

import (
	"math"
	"math/rand"

	"github.com/cesco345/molecular-biology-meanderings/pkg/seq"
)

// Matrix returns a (rows, cols) matrix of standard normal draws.
func Matrix(r *rand.Rand, rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		row := make([]float64, cols)
		for j := range row {
			row[j] = r.NormFloat64()
		}
		m[i] = row
	}
	return m
}

// GeneExpression returns a (samples, genes) matrix of standardized
// log-expression values.
func GeneExpression(r *rand.Rand, samples, genes int) [][]float64 {
	return Matrix(r, samples, genes)
}

// ProteinFeatures returns a (residues, features) matrix of per-residue
// structural features.
func ProteinFeatures(r *rand.Rand, residues, features int) [][]float64 {
	return Matrix(r, residues, features)
}

// VariantFeatures returns a (variants, features) matrix of variant
// annotations.
func VariantFeatures(r *rand.Rand, variants, features int) [][]float64 {
	return Matrix(r, variants, features)
}

// Metabolites returns a (samples, metabolites) matrix of non-negative
// concentrations, exponentially distributed.
func Metabolites(r *rand.Rand, samples, metabolites int) [][]float64 {
	m := make([][]float64, samples)
	for i := range m {
		row := make([]float64, metabolites)
		for j := range row {
			row[j] = r.ExpFloat64()
		}
		m[i] = row
	}
	return m
}

// Sequences returns n random DNA strings of the given length.
func Sequences(r *rand.Rand, n, length int) []string {
	out := make([]string, n)
	buf := make([]byte, length)
	for i := range out {
		for j := range buf {
			buf[j] = seq.Alphabet[r.Intn(seq.AlphabetSize)]
		}
		out[i] = string(buf)
	}
	return out
}

// Concat joins two matrices with equal row counts column-wise, as used for
// drug/cell-line and pairwise-interaction inputs.
func Concat(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		row := make([]float64, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		row = append(row, b[i]...)
		out[i] = row
	}
	return out
}

// RandomWeights returns a flat row-major (outDim, inDim) weight matrix with
// entries drawn from N(0, 1/inDim), the usual scale for a random projection.
func RandomWeights(r *rand.Rand, outDim, inDim int) []float64 {
	scale := 1 / math.Sqrt(float64(inDim))
	w := make([]float64, outDim*inDim)
	for i := range w {
		w[i] = r.NormFloat64() * scale
	}
	return w
}

// RandomBias returns a length-outDim bias vector with small normal entries.
func RandomBias(r *rand.Rand, outDim int) []float64 {
	b := make([]float64, outDim)
	for i := range b {
		b[i] = r.NormFloat64() * 0.1
	}
	return b
}

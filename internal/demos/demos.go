// Package demos contains the nine affine-projection demonstrations over
// synthetic biological data. Each demonstration is a standalone pure
// function from a config to a report; none depends on another's output.
package demos

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/cesco345/molecular-biology-meanderings/internal/affine"
	"github.com/cesco345/molecular-biology-meanderings/internal/config"
	"github.com/cesco345/molecular-biology-meanderings/internal/dataset"
	"github.com/cesco345/molecular-biology-meanderings/internal/pca"
	"github.com/cesco345/molecular-biology-meanderings/internal/plotdata"
	"github.com/cesco345/molecular-biology-meanderings/internal/tensor"
	"github.com/cesco345/molecular-biology-meanderings/pkg/seq"
)

var order = []string{
	"gene-expression",
	"protein-coordinates",
	"dna-onehot",
	"dimensionality-reduction",
	"pairwise-interaction",
	"variant-effect",
	"drug-response",
	"metabolic-flux",
	"binding-site",
}

var registry = map[string]func(*config.Config) (*Report, error){
	"gene-expression":          geneExpression,
	"protein-coordinates":      proteinCoordinates,
	"dna-onehot":               dnaOneHot,
	"dimensionality-reduction": dimensionalityReduction,
	"pairwise-interaction":     pairwiseInteraction,
	"variant-effect":           variantEffect,
	"drug-response":            drugResponse,
	"metabolic-flux":           metabolicFlux,
	"binding-site":             bindingSite,
}

// projectRows builds a randomly parameterized projector for the given rows
// and runs the forward pass.
func projectRows(r *rand.Rand, rows [][]float64, outDim int) (*affine.Projector, *tensor.Tensor, error) {
	x, err := tensor.FromRows(rows)
	if err != nil {
		return nil, nil, err
	}
	return projectTensor(r, x, outDim)
}

func projectTensor(r *rand.Rand, x *tensor.Tensor, outDim int) (*affine.Projector, *tensor.Tensor, error) {
	inDim := x.Shape()[1]
	proj, err := affine.New(inDim, outDim, true, tensor.Float64)
	if err != nil {
		return nil, nil, err
	}
	if err := proj.SetWeights(dataset.RandomWeights(r, outDim, inDim)); err != nil {
		return nil, nil, err
	}
	if err := proj.SetBias(dataset.RandomBias(r, outDim)); err != nil {
		return nil, nil, err
	}
	y, err := proj.Forward(x)
	if err != nil {
		return nil, nil, err
	}
	return proj, y, nil
}

func columnMeans(rows [][]float64) []float64 {
	means := make([]float64, len(rows[0]))
	for _, row := range rows {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(len(rows))
	}
	return means
}

func flattenRows(rows [][]float64) []float64 {
	out := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

func column(rows [][]float64, j int) []float64 {
	out := make([]float64, len(rows))
	for i := range rows {
		out[i] = rows[i][j]
	}
	return out
}

func baseReport(name string, proj *affine.Projector, in [2]int, outRows [][]float64) *Report {
	return &Report{
		Name:        name,
		InputShape:  in,
		OutputShape: [2]int{len(outRows), len(outRows[0])},
		WeightNorm:  proj.WeightNorm(),
		ColumnMeans: columnMeans(outRows),
	}
}

// geneExpression projects standardized log-expression profiles onto a small
// factor space and buckets the projected values.
func geneExpression(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	x := dataset.GeneExpression(r, cfg.Samples, cfg.Genes)

	proj, y, err := projectRows(r, x, cfg.Factors)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("gene-expression", proj, [2]int{cfg.Samples, cfg.Genes}, rows)
	report.Histogram, err = plotdata.Histogram(flattenRows(rows), cfg.Bins)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// proteinCoordinates maps per-residue features to 3-D coordinates and pairs
// the first two axes for a scatter.
func proteinCoordinates(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	x := dataset.ProteinFeatures(r, cfg.Residues, cfg.ResidueFeatures)

	proj, y, err := projectRows(r, x, 3)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("protein-coordinates", proj, [2]int{cfg.Residues, cfg.ResidueFeatures}, rows)
	report.Scatter, err = plotdata.Scatter(column(rows, 0), column(rows, 1))
	if err != nil {
		return nil, err
	}
	return report, nil
}

// dnaOneHot projects one-hot encoded sequences onto motif scores and renders
// the score matrix as a heatmap.
func dnaOneHot(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	seqs := dataset.Sequences(r, cfg.Sequences, cfg.SeqLength)

	x, err := seq.OneHot(seqs)
	if err != nil {
		return nil, err
	}
	proj, y, err := projectTensor(r, x, cfg.Motifs)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("dna-onehot", proj, [2]int{cfg.Sequences, cfg.SeqLength * seq.AlphabetSize}, rows)
	report.Heatmap, err = plotdata.Heatmap(rows)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// dimensionalityReduction contrasts a random affine projection with PCA on
// the same data: an arbitrary projection keeps far less variance than the
// variance-optimal one.
func dimensionalityReduction(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	x := dataset.Matrix(r, cfg.Samples, cfg.PairFeatures)

	// Bias-free random projection, so both maps are purely linear.
	weights := dataset.RandomWeights(r, cfg.Components, cfg.PairFeatures)
	a := make([][]float64, cfg.Components)
	for i := range a {
		a[i] = weights[i*cfg.PairFeatures : (i+1)*cfg.PairFeatures]
	}
	randProj, err := affine.Transform64(x, a, nil)
	if err != nil {
		return nil, err
	}

	p := pca.New(cfg.Components)
	pcaProj, err := p.FitTransform(mat.NewDense(cfg.Samples, cfg.PairFeatures, flattenRows(x)))
	if err != nil {
		return nil, err
	}

	total := pca.TotalVariance(mat.NewDense(cfg.Samples, cfg.PairFeatures, flattenRows(x)))
	affineVar := pca.TotalVariance(mat.NewDense(cfg.Samples, cfg.Components, flattenRows(randProj)))
	pcaVar := pca.TotalVariance(pcaProj)

	report := &Report{
		Name:              "dimensionality-reduction",
		InputShape:        [2]int{cfg.Samples, cfg.PairFeatures},
		OutputShape:       [2]int{cfg.Samples, cfg.Components},
		ColumnMeans:       columnMeans(randProj),
		ExplainedVariance: p.ExplainedVarianceRatio(),
		AffineRetained:    affineVar / total,
		PCARetained:       pcaVar / total,
	}
	if cfg.Components >= 2 {
		pcX := make([]float64, cfg.Samples)
		pcY := make([]float64, cfg.Samples)
		for i := 0; i < cfg.Samples; i++ {
			pcX[i] = pcaProj.At(i, 0)
			pcY[i] = pcaProj.At(i, 1)
		}
		report.Scatter, err = plotdata.Scatter(pcX, pcY)
		if err != nil {
			return nil, err
		}
	}
	return report, nil
}

// pairwiseInteraction scores concatenated feature pairs with a scalar output.
func pairwiseInteraction(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	left := dataset.Matrix(r, cfg.Samples, cfg.PairFeatures)
	right := dataset.Matrix(r, cfg.Samples, cfg.PairFeatures)
	x := dataset.Concat(left, right)

	proj, y, err := projectRows(r, x, 1)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("pairwise-interaction", proj, [2]int{cfg.Samples, 2 * cfg.PairFeatures}, rows)
	report.Histogram, err = plotdata.Histogram(flattenRows(rows), cfg.Bins)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// variantEffect maps variant annotations to a small set of effect scores and
// summarizes each effect column as a box.
func variantEffect(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	x := dataset.VariantFeatures(r, cfg.Samples, cfg.VariantFeatures)

	proj, y, err := projectRows(r, x, cfg.EffectClasses)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("variant-effect", proj, [2]int{cfg.Samples, cfg.VariantFeatures}, rows)
	report.Box, err = plotdata.Box(rows)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// drugResponse predicts a scalar response from concatenated drug and
// cell-line features and pairs it with the first drug feature.
func drugResponse(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	drug := dataset.Matrix(r, cfg.Samples, cfg.DrugFeatures)
	cell := dataset.Matrix(r, cfg.Samples, cfg.CellFeatures)
	x := dataset.Concat(drug, cell)

	proj, y, err := projectRows(r, x, 1)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("drug-response", proj, [2]int{cfg.Samples, cfg.DrugFeatures + cfg.CellFeatures}, rows)
	report.Scatter, err = plotdata.Scatter(column(drug, 0), column(rows, 0))
	if err != nil {
		return nil, err
	}
	return report, nil
}

// metabolicFlux maps metabolite concentrations to reaction fluxes and
// summarizes each reaction as a box.
func metabolicFlux(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	x := dataset.Metabolites(r, cfg.Samples, cfg.Metabolites)

	proj, y, err := projectRows(r, x, cfg.Reactions)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("metabolic-flux", proj, [2]int{cfg.Samples, cfg.Metabolites}, rows)
	report.Box, err = plotdata.Box(rows)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// bindingSite scores flattened one-hot sequence windows with a scalar output.
func bindingSite(cfg *config.Config) (*Report, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	windows := dataset.Sequences(r, cfg.Sequences, cfg.SeqLength)

	x, err := seq.OneHot(windows)
	if err != nil {
		return nil, err
	}
	proj, y, err := projectTensor(r, x, 1)
	if err != nil {
		return nil, err
	}
	rows, err := y.Rows()
	if err != nil {
		return nil, err
	}

	report := baseReport("binding-site", proj, [2]int{cfg.Sequences, cfg.SeqLength * seq.AlphabetSize}, rows)
	report.Histogram, err = plotdata.Histogram(flattenRows(rows), cfg.Bins)
	if err != nil {
		return nil, err
	}
	return report, nil
}

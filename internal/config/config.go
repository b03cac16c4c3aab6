package config

// Config holds the dimensions and seed shared by the demonstrations. The
// defaults mirror the original notebook shapes.
type Config struct {
	Seed    int64
	Samples int
	Bins    int

	// gene-expression
	Genes   int
	Factors int

	// protein-coordinates
	Residues        int
	ResidueFeatures int

	// dna-onehot and binding-site
	Sequences int
	SeqLength int
	Motifs    int

	// dimensionality-reduction
	Components int

	// pairwise-interaction
	PairFeatures int

	// variant-effect
	VariantFeatures int
	EffectClasses   int

	// drug-response
	DrugFeatures int
	CellFeatures int

	// metabolic-flux
	Metabolites int
	Reactions   int
}

// Default returns the notebook-shaped configuration.
func Default() *Config {
	return &Config{
		Seed:            42,
		Samples:         100,
		Bins:            30,
		Genes:           1000,
		Factors:         50,
		Residues:        120,
		ResidueFeatures: 64,
		Sequences:       80,
		SeqLength:       40,
		Motifs:          12,
		Components:      2,
		PairFeatures:    32,
		VariantFeatures: 48,
		EffectClasses:   5,
		DrugFeatures:    128,
		CellFeatures:    256,
		Metabolites:     90,
		Reactions:       25,
	}
}

// Load builds a configuration from the defaults and the given options.
func Load(opts ...Option) *Config {
	cfg := Default()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option is a function that modifies the config
type Option func(*Config)

// WithSeed sets the random seed shared by all demonstrations
func WithSeed(v int64) Option {
	return func(c *Config) { c.Seed = v }
}

// WithSamples sets the sample count
func WithSamples(v int) Option {
	return func(c *Config) { c.Samples = v }
}

// WithBins sets the histogram bucket count
func WithBins(v int) Option {
	return func(c *Config) { c.Bins = v }
}

// WithGenes sets the gene count for the expression demo
func WithGenes(v int) Option {
	return func(c *Config) { c.Genes = v }
}

// WithFactors sets the projected factor count for the expression demo
func WithFactors(v int) Option {
	return func(c *Config) { c.Factors = v }
}

// WithComponents sets the retained dimension for the reduction demo
func WithComponents(v int) Option {
	return func(c *Config) { c.Components = v }
}

// WithSequences sets the sequence count for the DNA demos
func WithSequences(v int) Option {
	return func(c *Config) { c.Sequences = v }
}

// WithSeqLength sets the sequence length for the DNA demos
func WithSeqLength(v int) Option {
	return func(c *Config) { c.SeqLength = v }
}

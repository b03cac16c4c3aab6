package meanderings

import (
	"github.com/cesco345/molecular-biology-meanderings/internal/config"
	"github.com/cesco345/molecular-biology-meanderings/internal/demos"
)

// Workbench is the main entry point: it runs the affine-projection
// demonstrations and returns their reports.
type Workbench struct {
	runner *demos.Runner
}

// Report re-exports the demonstration report type.
type Report = demos.Report

// New creates a workbench from the default config and the given options.
func New(opts ...config.Option) *Workbench {
	return &Workbench{runner: demos.NewRunner(opts...)}
}

// Demos returns the available demonstration names in order.
func (w *Workbench) Demos() []string {
	return w.runner.Names()
}

// Run executes a single demonstration by name.
func (w *Workbench) Run(name string) (*Report, error) {
	return w.runner.Run(name)
}

// RunAll executes every demonstration.
func (w *Workbench) RunAll() ([]*Report, error) {
	return w.runner.RunAll()
}

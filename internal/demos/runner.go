package demos

import (
	"fmt"

	"github.com/cesco345/molecular-biology-meanderings/internal/config"
)

// Runner executes demonstrations against a shared configuration. Every
// demonstration seeds its own generator from the config, so runs are
// independent of each other and of execution order.
type Runner struct {
	cfg *config.Config
}

// NewRunner creates a runner from the default config and the given options.
func NewRunner(opts ...config.Option) *Runner {
	return &Runner{cfg: config.Load(opts...)}
}

// Names returns the demonstration names in registry order.
func (r *Runner) Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Run executes a single demonstration by name.
func (r *Runner) Run(name string) (*Report, error) {
	demo, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("demos: unknown demonstration %q", name)
	}
	return demo(r.cfg)
}

// RunAll executes every demonstration in registry order.
func (r *Runner) RunAll() ([]*Report, error) {
	reports := make([]*Report, 0, len(order))
	for _, name := range order {
		report, err := registry[name](r.cfg)
		if err != nil {
			return nil, fmt.Errorf("demos: %s failed: %w", name, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

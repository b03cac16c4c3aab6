package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cesco345/molecular-biology-meanderings/internal/config"
	"github.com/cesco345/molecular-biology-meanderings/internal/demos"
)

func main() {
	fs := flag.NewFlagSet("meanderings", flag.ExitOnError)
	demo := fs.String("demo", "all", "demonstration name, or 'all'")
	seed := fs.Int64("seed", 42, "random seed shared by the demonstrations")
	samples := fs.Int("samples", 100, "sample count")
	bins := fs.Int("bins", 30, "histogram bucket count")
	list := fs.Bool("list", false, "list demonstration names and exit")
	_ = fs.Parse(os.Args[1:])

	runner := demos.NewRunner(
		config.WithSeed(*seed),
		config.WithSamples(*samples),
		config.WithBins(*bins),
	)

	if *list {
		for _, name := range runner.Names() {
			fmt.Println(name)
		}
		return
	}

	var reports []*demos.Report
	if *demo == "all" {
		all, err := runner.RunAll()
		if err != nil {
			log.Fatalf("run failed: %v", err)
		}
		reports = all
	} else {
		report, err := runner.Run(*demo)
		if err != nil {
			log.Fatalf("run failed: %v", err)
		}
		reports = []*demos.Report{report}
	}

	for _, r := range reports {
		printReport(r)
	}
}

func printReport(r *demos.Report) {
	fmt.Printf("== %s\n", r.Name)
	fmt.Printf("   input  (%d, %d)\n", r.InputShape[0], r.InputShape[1])
	fmt.Printf("   output (%d, %d)\n", r.OutputShape[0], r.OutputShape[1])
	if r.WeightNorm > 0 {
		fmt.Printf("   weight norm %.4f\n", r.WeightNorm)
	}
	if n := len(r.ColumnMeans); n > 0 {
		show := n
		if show > 5 {
			show = 5
		}
		fmt.Printf("   column means (first %d of %d): ", show, n)
		for j := 0; j < show; j++ {
			fmt.Printf("%.4f ", r.ColumnMeans[j])
		}
		fmt.Println()
	}
	if r.Histogram != nil {
		fmt.Printf("   histogram buckets: %v\n", r.Histogram.Counts)
	}
	if r.Heatmap != nil {
		fmt.Printf("   heatmap range [%.4f, %.4f]\n", r.Heatmap.Min, r.Heatmap.Max)
	}
	if r.Box != nil {
		fmt.Printf("   box columns: %d\n", len(r.Box.Median))
	}
	if r.Scatter != nil {
		fmt.Printf("   scatter points: %d\n", len(r.Scatter.X))
	}
	if len(r.ExplainedVariance) > 0 {
		fmt.Printf("   explained variance ratio: %v\n", r.ExplainedVariance)
		fmt.Printf("   retained variance: affine %.4f, pca %.4f\n", r.AffineRetained, r.PCARetained)
	}
}

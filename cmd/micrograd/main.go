// Package main provides the micrograd CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/dataset"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "check":
		if !runCheck() {
			os.Exit(1)
		}
	case "train":
		if err := runTrain(args, os.Stdout); err != nil {
			log.Fatalf("train: %v", err)
		}
	case "moons":
		if err := runMoons(args, os.Stdout); err != nil {
			log.Fatalf("moons: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("micrograd - scalar autodiff and tiny neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  check      Verify the engine against the reference expressions")
	fmt.Println("  train      Train an MLP on two-moons data")
	fmt.Println("  moons      Write synthetic two-moons data as CSV")
}

// fixture is a reference expression with known value and gradients.
type fixture struct {
	name  string
	build func(g *autodiff.Graph) (out autodiff.Value, inputs []autodiff.Value)
	value float64
	grads []float64
	tol   float64
}

var fixtures = []fixture{
	{
		name: "sanity_check",
		build: func(g *autodiff.Graph) (autodiff.Value, []autodiff.Value) {
			x := g.Leaf(-4.0)
			z := g.Add(g.Add(g.Mul(g.Leaf(2), x), g.Leaf(2)), x)
			q := g.Add(g.ReLU(z), g.Mul(z, x))
			h := g.ReLU(g.Mul(z, z))
			y := g.Add(g.Add(h, q), g.Mul(q, x))
			return y, []autodiff.Value{x}
		},
		value: -20,
		grads: []float64{46},
		tol:   1e-6,
	},
	{
		name: "more_ops",
		build: func(g *autodiff.Graph) (autodiff.Value, []autodiff.Value) {
			a := g.Leaf(-4.0)
			b := g.Leaf(2.0)
			c := g.Add(a, b)
			d := g.Add(g.Mul(a, b), g.Pow(b, 3))
			c = g.Add(c, g.Add(c, g.Leaf(1)))
			c = g.Add(c, g.Add(g.Add(g.Leaf(1), c), g.Neg(a)))
			d = g.Add(d, g.Add(g.Mul(d, g.Leaf(2)), g.ReLU(g.Add(b, a))))
			d = g.Add(d, g.Add(g.Mul(g.Leaf(3), d), g.ReLU(g.Sub(b, a))))
			e := g.Sub(c, d)
			f := g.Pow(e, 2)
			out := g.Div(f, g.Leaf(2.0))
			out = g.Add(out, g.Div(g.Leaf(10.0), f))
			return out, []autodiff.Value{a, b}
		},
		value: 24.7041,
		grads: []float64{138.8338, 645.5773},
		tol:   1e-4,
	},
}

func runCheck() bool {
	ok := true
	for _, f := range fixtures {
		g := autodiff.NewGraph(autodiff.Config{})
		out, inputs := f.build(g)
		if err := g.Backward(out); err != nil {
			log.Fatalf("%s: %v", f.name, err)
		}

		pass := math.Abs(g.Data(out)-f.value) < f.tol
		fmt.Printf("%s: value %.6f, expected %.6f\n", f.name, g.Data(out), f.value)
		for i, in := range inputs {
			fmt.Printf("%s: grad[%d] %.6f, expected %.6f\n", f.name, i, g.Grad(in), f.grads[i])
			pass = pass && math.Abs(g.Grad(in)-f.grads[i]) < f.tol
		}
		if pass {
			fmt.Printf("%s passed\n", f.name)
		} else {
			fmt.Printf("%s FAILED\n", f.name)
			ok = false
		}
	}
	return ok
}

// runTrain fits an MLP on two-moons data and reports progress to w.
func runTrain(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	dataFile := fs.String("data", "", "CSV file with x0,x1,label rows (empty = synthetic moons)")
	maxSamples := fs.Int("samples", 100, "Max samples to load or generate (0 = all)")
	noise := fs.Float64("noise", 0.1, "Noise of synthetic moons")
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	hidden := fs.Int("hidden", 16, "Neurons per hidden layer")
	layers := fs.Int("layers", 2, "Number of hidden layers")
	batchSize := fs.Int("batch", 0, "Batch size (0 = full batch)")
	lrStart := fs.Float64("lr", 1.0, "Initial learning rate")
	lrEnd := fs.Float64("lr-end", 0.1, "Final learning rate of the linear decay")
	alpha := fs.Float64("alpha", 1e-4, "L2 regularization strength (negative disables)")
	seed := fs.Int64("seed", 1337, "Random seed for data, weights and shuffling")
	maxNodes := fs.Int("max-nodes", 0, "Graph node limit (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // Reproducible runs

	var data *dataset.Moons
	var err error
	if *dataFile == "" {
		n := *maxSamples
		if n <= 0 {
			n = 100
		}
		fmt.Fprintf(w, "Generating %d synthetic moons (noise %.2f)\n", n, *noise)
		data = dataset.MakeMoons(n, *noise, rng)
	} else {
		fmt.Fprintf(w, "Loading data from: %s\n", *dataFile)
		data, err = dataset.LoadMoonsCSV(*dataFile, *maxSamples)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
	}
	fmt.Fprintf(w, "Data loaded: %d samples\n", data.NumSamples())

	sizes := make([]int, 0, *layers+1)
	for range *layers {
		sizes = append(sizes, *hidden)
	}
	sizes = append(sizes, 1)

	g := autodiff.NewGraph(autodiff.Config{MaxNodes: *maxNodes})
	model := nn.NewMLP(g, 2, sizes, nn.MLPConfig{}, rng)
	if err := g.Err(); err != nil {
		return fmt.Errorf("failed to build model: %w", err)
	}
	fmt.Fprintf(w, "Model: %s\n", model)
	fmt.Fprintf(w, "Parameters: %d\n", nn.NumParameters(model))

	optimizer := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{LR: *lrStart})
	schedule := optim.LinearDecay{Start: *lrStart, End: *lrEnd, Steps: *epochs}

	var shuffle *rand.Rand
	if *batchSize > 0 {
		shuffle = rng
	}
	trainer := train.New(g, model, optimizer, schedule, train.Config{
		Epochs:    *epochs,
		Alpha:     *alpha,
		BatchSize: *batchSize,
		Rand:      shuffle,
		Logger:    log.New(w, "", 0),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	history, err := trainer.Run(ctx, data)
	if err != nil {
		return fmt.Errorf("training stopped after %d epochs: %w", len(history), err)
	}

	final, err := trainer.Evaluate(data)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	fmt.Fprintf(w, "Final loss: %.6f, accuracy: %.1f%%\n", final.Loss, final.Accuracy*100)
	return nil
}

// runMoons writes synthetic two-moons CSV to the -o file, or to stdout.
func runMoons(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("moons", flag.ContinueOnError)
	n := fs.Int("n", 100, "Number of samples")
	noise := fs.Float64("noise", 0.1, "Standard deviation of the Gaussian noise")
	seed := fs.Int64("seed", 1337, "Random seed")
	out := fs.String("o", "", "Output file (empty = stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data := dataset.MakeMoons(*n, *noise, rand.New(rand.NewSource(*seed))) //nolint:gosec // Reproducible data

	if *out == "" {
		return data.WriteCSV(stdout)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := data.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return f.Close()
}

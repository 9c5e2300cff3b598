// Command ripple trains a physics-informed neural network on the 1D wave
// equation and reports its accuracy against the closed-form solution.
package main

import (
	"flag"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/ripple-ml/ripple/pinn"
)

var (
	flagPoints   = flag.Int("points", 1000, "number of collocation points")
	flagDuration = flag.Float64("duration", 1.0, "time domain upper bound T")
	flagSpeed    = flag.Float64("wave-speed", 1.0, "wave propagation speed c")
	flagHidden   = flag.Int("hidden", 32, "hidden layer width")
	flagLR       = flag.Float64("lr", 1e-4, "Adam learning rate")
	flagIters    = flag.Int("iters", 5000, "training iterations")
	flagClip     = flag.Float64("clip", 1.0, "gradient-norm clipping threshold")
	flagLogEvery = flag.Int("log-every", 500, "loss reporting interval")
	flagSeed     = flag.Uint64("seed", 1, "sampling and initialization seed")
	flagTest     = flag.Int("test-points", 1000, "test points for the accuracy report")
	flagPlot     = flag.String("plot", "", "directory for output plots (empty disables plotting)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	trainer, err := pinn.NewTrainer(pinn.Config{
		Points:       *flagPoints,
		Duration:     *flagDuration,
		WaveSpeed:    *flagSpeed,
		Hidden:       *flagHidden,
		LearningRate: *flagLR,
		MaxIters:     *flagIters,
		ClipNorm:     *flagClip,
		LogEvery:     *flagLogEvery,
		Seed:         *flagSeed,
	})
	if err != nil {
		klog.Exitf("setup: %v", err)
	}

	bar := progressbar.NewOptions(*flagIters,
		progressbar.OptionSetDescription("training"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("steps"),
	)
	err = trainer.Run(func(pinn.StepStats) {
		_ = bar.Add(1)
	})
	fmt.Println()
	if err != nil {
		klog.Exitf("training: %v", err)
	}

	acc := trainer.Report(*flagTest)
	fmt.Printf("test points:        %d\n", acc.Points)
	fmt.Printf("mse:                %.3e\n", acc.MSE)
	fmt.Printf("relative error:     %.2f%%\n", acc.MeanRelErrPct)

	if *flagPlot != "" {
		writePlots(trainer, *flagPlot)
		fmt.Printf("plots written to %s\n", *flagPlot)
	}
}

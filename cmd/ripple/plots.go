package main

import (
	"os"
	"path/filepath"

	"github.com/janpfeifer/must"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ripple-ml/ripple/autodiff"
	"github.com/ripple-ml/ripple/pinn"
	"github.com/ripple-ml/ripple/tensor"
)

// writePlots renders the training loss curve and a solution snapshot into
// dir.
func writePlots(trainer *pinn.Trainer, dir string) {
	must.M(os.MkdirAll(dir, 0o755))
	writeLossCurve(trainer.History(), filepath.Join(dir, "loss.png"))
	writeSnapshot(trainer, filepath.Join(dir, "solution.png"))
}

// writeLossCurve plots the composite loss per iteration.
func writeLossCurve(history []float64, path string) {
	p := plot.New()
	p.Title.Text = "Composite physics-informed loss"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "loss"

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line := must.M1(plotter.NewLine(pts))
	p.Add(line)

	must.M(p.Save(12*vg.Inch, 6*vg.Inch, path))
}

// writeSnapshot plots predicted vs exact displacement over x at t = T/2.
func writeSnapshot(trainer *pinn.Trainer, path string) {
	cfg := trainer.Config()
	const n = 200
	snapshotT := cfg.Duration / 2

	xs := tensor.Zeros(n, 1)
	ts := tensor.Full(n, 1, snapshotT)
	for i := 0; i < n; i++ {
		xs.Data()[i] = float64(i) / float64(n-1)
	}
	g := autodiff.NewGraph()
	u := trainer.Net().Forward(g.Constant(xs), g.Constant(ts)).Value()

	predicted := make(plotter.XYs, n)
	exact := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		predicted[i].X = xs.Data()[i]
		predicted[i].Y = u.Data()[i]
		exact[i].X = xs.Data()[i]
		exact[i].Y = pinn.Exact(xs.Data()[i], snapshotT, cfg.WaveSpeed)
	}

	p := plot.New()
	p.Title.Text = "u(x, T/2): network vs exact"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u"

	predLine := must.M1(plotter.NewLine(predicted))
	exactLine := must.M1(plotter.NewLine(exact))
	exactLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(predLine, exactLine)
	p.Legend.Add("network", predLine)
	p.Legend.Add("exact", exactLine)

	must.M(p.Save(12*vg.Inch, 6*vg.Inch, path))
}

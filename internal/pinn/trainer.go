package pinn

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ripple-ml/ripple/internal/autodiff"
	"github.com/ripple-ml/ripple/internal/nn"
	"github.com/ripple-ml/ripple/internal/optim"
	"github.com/ripple-ml/ripple/internal/tensor"
)

// ErrNonFiniteLoss reports numerical divergence: the composite loss came
// out NaN or infinite. It is a hard stop for the whole run — a non-finite
// loss means the current parameter state blew up and there is no recovery
// path. Match with errors.Is.
var ErrNonFiniteLoss = errors.New("non-finite loss")

// Config holds the fixed hyperparameters of a training run. Zero values
// select the defaults noted per field.
type Config struct {
	Points        int     // collocation points N (default 1000)
	Duration      float64 // time domain upper bound T (default 1)
	WaveSpeed     float64 // c in u_tt = c²·u_xx (default 1)
	Hidden        int     // hidden layer width (default 32)
	LearningRate  float64 // Adam learning rate (default 1e-4)
	MaxIters      int     // iteration cap (default 5000)
	ClipNorm      float64 // gradient-norm clipping threshold (default 1)
	LogEvery      int     // reporting interval in iterations (default 500)
	VelocityFloor float64 // additive floor in the velocity term (default 1e-6)
	Seed          uint64  // sampling and init seed (default 1)
}

func (c Config) withDefaults() Config {
	if c.Points == 0 {
		c.Points = 1000
	}
	if c.Duration == 0 {
		c.Duration = 1
	}
	if c.WaveSpeed == 0 {
		c.WaveSpeed = 1
	}
	if c.Hidden == 0 {
		c.Hidden = 32
	}
	if c.LearningRate == 0 {
		c.LearningRate = 1e-4
	}
	if c.MaxIters == 0 {
		c.MaxIters = 5000
	}
	if c.ClipNorm == 0 {
		c.ClipNorm = 1
	}
	if c.LogEvery == 0 {
		c.LogEvery = 500
	}
	if c.VelocityFloor == 0 {
		c.VelocityFloor = 1e-6
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

// StepStats reports one completed training step.
type StepStats struct {
	Iteration int     // zero-based iteration index
	Loss      float64 // composite loss
	Physics   float64
	Initial   float64
	Velocity  float64
	Boundary  float64
	GradNorm  float64 // global gradient norm before clipping
}

// Trainer owns the training state: the network, the optimizer's moment
// estimates, and the fixed collocation batch. Lifecycle is
// NewTrainer → repeated Step (or Run) → read the trained network.
type Trainer struct {
	cfg     Config
	net     *nn.WaveNet
	opt     *optim.Adam
	physics *Physics
	x, t    *tensor.Dense
	iter    int
	history []float64
}

// NewTrainer builds a trainer from cfg: initializes the network, the Adam
// state, and samples the collocation batch once. The same batch is reused
// every iteration rather than resampled — a deliberate simplification, so
// generalization is bounded by the fixed sample's coverage of the domain.
func NewTrainer(cfg Config) (*Trainer, error) {
	cfg = cfg.withDefaults()
	if cfg.Points < 0 || cfg.Duration < 0 || cfg.WaveSpeed < 0 {
		return nil, errors.Errorf("pinn: negative configuration value: points=%d duration=%g wave-speed=%g",
			cfg.Points, cfg.Duration, cfg.WaveSpeed)
	}

	//nolint:gosec // math/rand for weight initialization, not security-critical
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	net := nn.NewWaveNet(cfg.Hidden, rng)
	x, t := NewSampler(cfg.Points, cfg.Duration, cfg.Seed).Batch()

	return &Trainer{
		cfg:     cfg,
		net:     net,
		opt:     optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: cfg.LearningRate}),
		physics: NewPhysics(cfg.WaveSpeed, cfg.VelocityFloor),
		x:       x,
		t:       t,
	}, nil
}

// Config returns the effective configuration, defaults filled in.
func (tr *Trainer) Config() Config { return tr.cfg }

// Net returns the trained network. Valid at any point in the lifecycle;
// after a divergence error it holds the parameter state at detection time.
func (tr *Trainer) Net() *nn.WaveNet { return tr.net }

// Iteration returns the number of completed steps.
func (tr *Trainer) Iteration() int { return tr.iter }

// History returns the composite loss of every completed step.
func (tr *Trainer) History() []float64 { return tr.history }

// Step runs one training iteration: build a fresh graph over the fixed
// batch, evaluate the composite loss, back-propagate to the parameters,
// clip the global gradient norm, and apply one Adam update.
//
// If the loss is not finite, Step returns an error wrapping
// ErrNonFiniteLoss before any gradient or parameter mutation: the network
// is left exactly as it was when the divergence was detected.
func (tr *Trainer) Step() (StepStats, error) {
	tr.opt.ZeroGrad()

	g := autodiff.NewGraph()
	x := g.Constant(tr.x)
	t := g.Constant(tr.t)
	losses := tr.physics.Losses(tr.net, x, t)

	stats := StepStats{
		Iteration: tr.iter,
		Loss:      losses.Total.Value().Scalar(),
		Physics:   losses.Physics.Value().Scalar(),
		Initial:   losses.Initial.Value().Scalar(),
		Velocity:  losses.Velocity.Value().Scalar(),
		Boundary:  losses.Boundary.Value().Scalar(),
	}
	if math.IsNaN(stats.Loss) || math.IsInf(stats.Loss, 0) {
		return stats, errors.Wrapf(ErrNonFiniteLoss, "iteration %d", tr.iter)
	}

	params := tr.net.Parameters()
	wrt := make([]*autodiff.Node, len(params))
	for i, p := range params {
		wrt[i] = g.Var(p)
	}
	grads := autodiff.Gradient(losses.Total, wrt...)
	for i, p := range params {
		p.SetGrad(grads[i].Value())
	}

	stats.GradNorm = optim.ClipGradNorm(params, tr.cfg.ClipNorm)
	tr.opt.Step()

	tr.iter++
	tr.history = append(tr.history, stats.Loss)
	return stats, nil
}

// Run trains until MaxIters or the first error. At every LogEvery-th
// iteration, including iteration 0, the current loss is logged. Observers
// are called after every successful step; they exist for progress displays
// and have no effect on training semantics.
func (tr *Trainer) Run(observers ...func(StepStats)) error {
	for tr.iter < tr.cfg.MaxIters {
		stats, err := tr.Step()
		if err != nil {
			klog.Errorf("training halted at iteration %d: %v", stats.Iteration, err)
			return err
		}
		if stats.Iteration%tr.cfg.LogEvery == 0 {
			klog.Infof("iteration=%d loss=%.6f physics=%.6f initial=%.6f velocity=%.6f boundary=%.6f grad_norm=%.4f",
				stats.Iteration, stats.Loss, stats.Physics, stats.Initial, stats.Velocity, stats.Boundary, stats.GradNorm)
		}
		for _, obs := range observers {
			obs(stats)
		}
	}
	return nil
}

// Report evaluates the trained network against the exact solution on n
// fresh test points.
func (tr *Trainer) Report(n int) Accuracy {
	return Evaluate(tr.net, tr.cfg.WaveSpeed, tr.cfg.Duration, n, tr.cfg.Seed+1)
}

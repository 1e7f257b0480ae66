package collage

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/collager/internal/anneal"
	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/grid"
	"github.com/ironsheep/collager/internal/params"
	"github.com/ironsheep/collager/internal/random"
)

// SnapshotWriter persists intermediate canvases when Config.DebugSnapshots is
// set.
type SnapshotWriter interface {
	WriteSnapshot(index int, canvas *params.Image) error
}

// Layer describes one placed layer.
type Layer struct {
	Chain  params.Chain
	Energy float32
}

// Result is the outcome of a collage run.
type Result struct {
	// Canvas is the final composite, the same size as the target.
	Canvas *params.Image

	// Background is the annealed background color.
	Background colorlab.Lab

	// Layers lists the placed layers in compositing order.
	Layers []Layer

	// Error is the mean per-pixel Lab distance between Canvas and the target.
	Error float32
}

// Driver runs the background and layer phases against one target.
type Driver struct {
	config    Config
	target    *Target
	logger    hclog.Logger
	src       random.Source
	snapshots SnapshotWriter
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithSource sets the random source. The default is entropy-seeded.
func WithSource(src random.Source) Option {
	return func(d *Driver) {
		if src != nil {
			d.src = src
		}
	}
}

// WithSnapshotWriter sets where debug snapshots go.
func WithSnapshotWriter(w SnapshotWriter) Option {
	return func(d *Driver) {
		d.snapshots = w
	}
}

// New creates a driver for target.
func New(config Config, target *Target, opts ...Option) *Driver {
	d := &Driver{
		config: config,
		target: target,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.src == nil {
		d.src = random.NewRandom()
	}
	return d
}

// Run builds the collage from library. All preconditions are checked before
// the first annealing step.
func (d *Driver) Run(library []*params.Image) (*Result, error) {
	if len(library) == 0 {
		return nil, ErrEmptyLibrary
	}
	if err := d.config.Validate(); err != nil {
		return nil, err
	}
	if d.config.DebugSnapshots && d.snapshots == nil {
		return nil, fmt.Errorf("debug snapshots enabled without a snapshot writer: %w", ErrInvalidConfig)
	}

	color, canvas, err := d.background()
	if err != nil {
		return nil, err
	}

	amount := d.config.Amount
	tenth := max(1, amount/10)
	layers := make([]Layer, 0, amount)

	for i := 0; i < amount; i++ {
		if i%tenth == 0 {
			d.logger.Info("progress", "percent", fmt.Sprintf("%.1f", float32(i)/float32(amount)*100))
		}

		placed, err := d.layer(i, library, canvas)
		if err != nil {
			return nil, err
		}

		canvas, _ = placed.Chain.Apply(library, canvas)
		layers = append(layers, placed)

		if d.config.DebugSnapshots {
			if err := d.snapshots.WriteSnapshot(i, canvas); err != nil {
				return nil, fmt.Errorf("failed to write snapshot %d: %w", i, err)
			}
		}
	}

	pixels := float64(len(canvas.Pixels()))
	result := &Result{
		Canvas:     canvas,
		Background: color,
		Layers:     layers,
		Error:      float32(totalDistance(d.target, canvas) / pixels),
	}

	d.logger.Info("final error", "error", fmt.Sprintf("%.3f", result.Error))
	return result, nil
}

// background anneals the flat background color and materializes it.
func (d *Driver) background() (colorlab.Lab, *params.Image, error) {
	start := background{target: d.target}
	if d.config.BackgroundSeed != nil {
		start.color = *d.config.BackgroundSeed
	} else {
		start.color = colorlab.RandomColor(d.src)
	}

	res, err := anneal.New(start, d.config.BackgroundTemperature, d.src).Anneal(d.config.Steps)
	if err != nil {
		return colorlab.Lab{}, nil, fmt.Errorf("background search failed: %w", err)
	}

	color := res.State.color
	d.logger.Debug("background chosen",
		"l", color.L, "a", color.A, "b", color.B,
		"energy", res.Energy, "accepted", res.Accepted)

	canvas, err := grid.New(d.target.Width(), d.target.Height(), color.WithAlpha(1))
	if err != nil {
		return colorlab.Lab{}, nil, err
	}
	return color, canvas, nil
}

// layer runs the restarts for one layer and returns the lowest-energy chain.
func (d *Driver) layer(index int, library []*params.Image, canvas *params.Image) (Layer, error) {
	sc := &scene{
		library: library,
		canvas:  canvas,
		scorer:  newScorer(d.target, canvas),
	}

	starts := d.config.Starts
	chains := make([]params.Chain, starts)
	energies := make([]float64, starts)

	for s := 0; s < starts; s++ {
		chain, err := params.NewChain(d.src, d.config.Features, len(library))
		if err != nil {
			return Layer{}, err
		}

		res, err := anneal.New(layer{scene: sc, chain: chain}, d.config.StartingTemperature, d.src).Anneal(d.config.Steps)
		if err != nil {
			return Layer{}, fmt.Errorf("layer %d restart %d failed: %w", index, s, err)
		}

		chains[s] = res.State.chain
		energies[s] = float64(res.Energy)
	}

	best := floats.MinIdx(energies)

	if d.logger.IsDebug() {
		args := []interface{}{
			"layer", index,
			"restart", best,
			"energy", energies[best],
			"chain", chains[best].String(),
		}
		if starts > 1 {
			mean, std := stat.MeanStdDev(energies, nil)
			args = append(args, "restart_mean", mean, "restart_stddev", std)
		}
		d.logger.Debug("layer chosen", args...)
	}

	return Layer{Chain: chains[best], Energy: float32(energies[best])}, nil
}

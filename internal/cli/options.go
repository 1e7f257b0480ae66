package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ironsheep/collager/internal/collage"
	"github.com/ironsheep/collager/internal/random"
)

// logLevelEnv names the environment variable consulted when --log-level is
// not given.
const logLevelEnv = "COLLAGER_LOG_LEVEL"

const (
	backgroundRandom   = "random"
	backgroundDominant = "dominant"
	backgroundCluster  = "cluster"
)

// backgroundClusters is the k used by the cluster background.
const backgroundClusters = 4

// options holds the parsed command line.
type options struct {
	steps                 int
	amount                int
	starts                int
	temperature           float32
	backgroundTemperature float32

	scaling      bool
	rotation     bool
	hue          bool
	transparency bool

	debug    bool
	debugDir string

	maxSize    int
	seed       uint64
	background string
	logLevel   string
}

func defaultOptions() *options {
	cfg := collage.DefaultConfig()
	return &options{
		steps:                 cfg.Steps,
		amount:                cfg.Amount,
		starts:                cfg.Starts,
		temperature:           cfg.StartingTemperature,
		backgroundTemperature: cfg.BackgroundTemperature,
		scaling:               cfg.Features.Scaling,
		rotation:              cfg.Features.Rotation,
		hue:                   cfg.Features.Hue,
		transparency:          cfg.Features.Transparency,
		debugDir:              "debug",
		background:            backgroundRandom,
	}
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.IntVarP(&o.steps, "steps", "s", o.steps, "annealing steps per search")
	fs.IntVarP(&o.amount, "amount", "a", o.amount, "number of layers to place")
	fs.IntVar(&o.starts, "starts", o.starts, "independent searches per layer; the best one is kept")
	fs.Float32VarP(&o.temperature, "temperature", "t", o.temperature, "starting temperature of each layer search")
	fs.Float32Var(&o.backgroundTemperature, "background-temperature", o.backgroundTemperature,
		"starting temperature of the background search, in Lab units")

	fs.BoolVar(&o.scaling, "scaling", o.scaling, "allow layers to be scaled")
	fs.BoolVar(&o.rotation, "rotation", o.rotation, "allow layers to be rotated")
	fs.BoolVar(&o.hue, "hue", o.hue, "allow layer colors to be shifted")
	fs.BoolVar(&o.transparency, "transparency", o.transparency, "allow layer opacity to be changed")

	fs.BoolVarP(&o.debug, "debug", "d", o.debug, "write the canvas after every layer")
	fs.StringVar(&o.debugDir, "debug-dir", o.debugDir, "directory for debug snapshots")

	fs.IntVar(&o.maxSize, "max-size", o.maxSize, "downscale the input so neither side exceeds this (0 = keep)")
	fs.Uint64Var(&o.seed, "seed", o.seed, "random seed for a reproducible run (0 = random)")
	fs.StringVar(&o.background, "background", o.background,
		"initial background color: random, dominant (input's dominant color), or cluster (largest Lab cluster; not fixed by --seed)")
}

// config translates the flags into a collage configuration. The background
// seed is filled in later because it needs the decoded input.
func (o *options) config() (collage.Config, error) {
	switch o.background {
	case backgroundRandom, backgroundDominant, backgroundCluster:
	default:
		return collage.Config{}, fmt.Errorf("invalid background %q (valid: %s, %s, %s): %w",
			o.background, backgroundRandom, backgroundDominant, backgroundCluster, collage.ErrInvalidConfig)
	}
	if o.maxSize < 0 {
		return collage.Config{}, fmt.Errorf("max-size must not be negative, got %d: %w", o.maxSize, collage.ErrInvalidConfig)
	}

	cfg := collage.Config{
		Steps:                 o.steps,
		Amount:                o.amount,
		Starts:                o.starts,
		StartingTemperature:   o.temperature,
		BackgroundTemperature: o.backgroundTemperature,
		DebugSnapshots:        o.debug,
	}
	cfg.Features.Scaling = o.scaling
	cfg.Features.Rotation = o.rotation
	cfg.Features.Hue = o.hue
	cfg.Features.Transparency = o.transparency

	return cfg, cfg.Validate()
}

// source returns a seeded source, or an entropy-seeded one when seed is 0.
func (o *options) source() random.Source {
	if o.seed == 0 {
		return random.NewRandom()
	}
	return random.New(o.seed)
}

// newLogger builds the command logger. The flag wins over the environment;
// with neither set the level is info.
func (o *options) newLogger(w io.Writer) (hclog.Logger, error) {
	name := o.logLevel
	if name == "" {
		name = os.Getenv(logLevelEnv)
	}

	level := hclog.Info
	if name != "" {
		level = hclog.LevelFromString(name)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("unknown log level %q", name)
		}
	}

	color := hclog.ColorOff
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color = hclog.ForceColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "collager",
		Level:  level,
		Output: w,
		Color:  color,
	}), nil
}

func (o *options) describeFeatures() string {
	var on []string
	for _, f := range []struct {
		name    string
		enabled bool
	}{
		{"scaling", o.scaling},
		{"rotation", o.rotation},
		{"hue", o.hue},
		{"transparency", o.transparency},
	} {
		if f.enabled {
			on = append(on, f.name)
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ",")
}

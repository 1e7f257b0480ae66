package collage

import (
	"errors"
	"fmt"

	"github.com/ironsheep/collager/internal/anneal"
	"github.com/ironsheep/collager/internal/colorlab"
	"github.com/ironsheep/collager/internal/params"
)

// ErrInvalidConfig is returned by Config.Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid collage configuration")

// ErrEmptyLibrary is returned by Run when no overlay images were supplied.
var ErrEmptyLibrary = params.ErrEmptyLibrary

// DefaultBackgroundTemperature is the starting temperature of the background
// search, in Lab units.
const DefaultBackgroundTemperature = 50

// Config controls a collage run.
type Config struct {
	// Steps is the number of annealing iterations per search. Must be > 0.
	Steps int

	// Amount is the number of layers to place. Zero produces only the
	// background.
	Amount int

	// Starts is the number of independent searches per layer. Must be >= 1.
	Starts int

	// StartingTemperature is the initial temperature of each layer search.
	StartingTemperature float32

	// BackgroundTemperature is the initial temperature of the background
	// search.
	BackgroundTemperature float32

	// Features selects which optional transforms layers may use.
	Features params.Features

	// DebugSnapshots writes the canvas after every layer through the
	// driver's SnapshotWriter.
	DebugSnapshots bool

	// BackgroundSeed, when set, replaces the random initial background color.
	BackgroundSeed *colorlab.Lab
}

// DefaultConfig returns the settings used by the command line when no flags
// are given.
func DefaultConfig() Config {
	return Config{
		Steps:                 1000,
		Amount:                100,
		Starts:                4,
		StartingTemperature:   1,
		BackgroundTemperature: DefaultBackgroundTemperature,
		Features:              params.AllFeatures(),
	}
}

// Validate checks the preconditions of a run.
func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps is %d: %w", c.Steps, anneal.ErrNoSteps)
	}
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d: %w", c.Amount, ErrInvalidConfig)
	}
	if c.Starts < 1 {
		return fmt.Errorf("starts must be at least 1, got %d: %w", c.Starts, ErrInvalidConfig)
	}
	if !(c.StartingTemperature > 0) {
		return fmt.Errorf("starting temperature must be positive, got %v: %w", c.StartingTemperature, ErrInvalidConfig)
	}
	if !(c.BackgroundTemperature > 0) {
		return fmt.Errorf("background temperature must be positive, got %v: %w", c.BackgroundTemperature, ErrInvalidConfig)
	}
	return nil
}

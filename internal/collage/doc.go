// Package collage approximates a target image with a flat background plus a
// stack of transformed library images, each placed by simulated annealing.
//
// # Phases
//
// A run has two phases:
//
//  1. Background: a single Lab color is annealed against the target and
//     materialized as an opaque canvas.
//  2. Layers: Config.Amount times, Config.Starts independent annealing runs
//     each search a fresh random parameter chain. The chain with the lowest
//     energy is composited onto the running canvas, which replaces it.
//
// # Energy
//
// Energy is the sum over all pixels of the Lab distance between the target and
// the candidate canvas. Lower is better. The reported error of a finished run
// is that sum divided by the pixel count.
//
// A layer only changes the rectangle it was composited into, so layer energies
// are evaluated incrementally: the per-pixel distances of the running canvas
// are cached once per layer, and each candidate recomputes only the pixels
// inside its touched rectangle.
//
// # Randomness
//
// Every draw goes through the random.Source given with WithSource. Two drivers
// built with equal seeds, configs, targets, and libraries produce identical
// results.
package collage

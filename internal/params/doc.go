// Package params implements the transform pipeline that turns one library
// image into one candidate collage layer.
//
// # Pipeline
//
// A Chain is a fixed, ordered list of Parameter nodes:
//
//	Index -> Scale -> Hue -> Transparency -> Angle -> Position
//
// Applying a chain threads a State through every node front to back:
//
//  1. Index stages a private copy of one library image as the overlay
//  2. Scale resizes the staged overlay (nearest neighbor)
//  3. Hue adds a Lab offset to every staged pixel
//  4. Transparency shifts alpha of pixels that are not already near-invisible
//  5. Angle stages a rotation for the compositing step
//  6. Position clamps the placement to the canvas and composites the overlay
//     onto a copy of the canvas, producing the chain's output
//
// The order is part of the contract. Index must run before anything that
// edits the overlay, and Angle must run before Position consumes it.
//
// # Perturbation
//
// Perturbing a chain perturbs every node exactly once, in chain order, and
// returns a new chain. The amount of change scales with the annealing
// temperature; see each node for its noise amplitude.
//
// # Disabled Nodes
//
// Scale, Hue, Transparency, and Angle can be switched off for a run via
// Features. A disabled node holds no value: its Apply is the identity and its
// Perturb returns the node unchanged without drawing from the random source.
package params

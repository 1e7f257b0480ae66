// Package grid provides the generic pixel buffer the collage is composited on.
//
// A Grid stores width*height values of any type in a flat row-major slice.
// It is used with colorlab.Lab for targets and colorlab.Laba for canvases and
// library images.
//
// # Coordinate System
//
// All coordinates are 0-based integers with the origin at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//   - Valid positions lie in [0, width) x [0, height)
//
// Reads and writes outside that range are not errors. Get reports ok=false,
// GetMut returns nil, and the compositing functions drop the pixel.
//
// # Compositing
//
// Overlay and OverlayRotated are generic over any element type with an Over
// method, so the same code composites Laba canvases and test types alike.
// Both return the rectangle of destination pixels they touched, clipped to the
// destination. Callers use it to restrict error evaluation to the changed area.
//
// OverlayRotated maps each destination pixel inside the rotated footprint back
// into the source image and takes exactly one nearest-neighbor sample. Its cost
// is proportional to the footprint area, not to the canvas.
package grid

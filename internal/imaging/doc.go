// Package imaging moves images between files and the Lab grids the collage
// works on.
//
// This package covers everything that touches image files: decoding targets
// and library images, scanning a library directory, pre-resizing large
// inputs, converting to and from Lab, and writing results and debug
// snapshots.
//
// # Color Interpretation
//
// Decoded pixels are normalized to 8-bit non-premultiplied RGBA and each
// channel is divided by 255. The resulting values are handed to the Lab
// conversion as linear RGB without gamma decoding. ToNRGBA applies the exact
// inverse, so a color read from a file and written back is unchanged up to
// 8-bit rounding.
//
// # Coordinate System
//
// Grids returned by this package always start at (0,0), whatever the bounds
// of the source image. X increases rightward and Y increases downward.
//
// # Supported Formats
//
// Open decodes PNG, JPEG, GIF, BMP, and WebP. Save writes PNG, JPEG, or BMP
// depending on the file extension.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The conversion functions
// are stateless and can be called concurrently on different images.
package imaging

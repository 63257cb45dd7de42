// Package matting implements shadow-preserving background removal for
// flat-background product and studio photographs.
//
// The pipeline extracts the foreground subject while keeping its cast shadow
// as a semi-transparent region, producing an RGBA raster ready for lossless
// PNG encoding. It runs as a fixed sequence of stages over dense pixel
// buffers:
//
//  1. Background key estimation (corner mean or caller-supplied color)
//  2. Chroma distance field (per-pixel RGB distance to the key, normalized)
//  3. Alpha shaping (three-zone piecewise map from distance to raw alpha)
//  4. Object/shadow mask classification
//  5. Morphological shave (chamfer-distance erosion of the object mask)
//  6. Feathering (chamfer-distance alpha ramp inward from the shaved edge)
//  7. Alpha compositing with shadow pass-through and alpha boost
//  8. Grayscale darkened output compositing
//
// # Determinism
//
// Every stage is a pure function of its inputs. Given the same raster and
// the same Params, Process produces a bit-identical output raster. The
// distance transform is a two-pass city-block (chamfer) approximation, not
// an exact Euclidean transform; that approximation is part of the contract.
//
// # Buffers
//
// Each stage allocates its own scalar fields and masks and never mutates a
// previous stage's buffer, so stages are independently testable. All buffers
// are local to one Process call; nothing is shared across invocations, and
// separate images may be processed concurrently.
//
// # Coordinate System
//
// Rasters are row-major with origin at the top-left. Scalar fields and masks
// are flat W*H slices indexed by y*W+x, aligned 1:1 with raster pixels.
package matting

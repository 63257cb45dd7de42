// Package imaging provides the raster I/O collaborators around the matting
// pipeline: decoding input files into RGBA rasters, caching decoded rasters,
// encoding output rasters to PNG, and building before/after preview pairs.
//
// # File Intake
//
// Only PNG and JPEG inputs are accepted. Extension and decoder must agree;
// anything else is rejected before any pixel work happens, so a malformed
// file is a per-image failure and never reaches the pipeline.
//
// # Thread Safety
//
// The RasterCache type is safe for concurrent use, which is what lets the
// batch processor fan images out across workers while sharing one cache.
// Cached rasters are treated as immutable by every consumer.
//
// # Memory Management
//
// Cached rasters remain in memory until explicitly removed via Evict() or
// Clear(). Batch runs over many large images should Clear() between batches
// to keep memory bounded.
package imaging

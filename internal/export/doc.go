// Package export runs the matting pipeline over batches of image files and
// packages the results for delivery.
//
// # Batch Processing
//
// A batch fans its images out across a bounded worker pool. Every image is
// processed independently: a file that fails to decode or validate is
// reported as a per-image failure and never stops the rest of the batch.
// Output ordering always matches input ordering regardless of which worker
// finished first.
//
// # Archive Export
//
// Processed outputs can be packed into a single zip archive of PNG files,
// one entry per successfully processed image, named after the source file.
package export

package export

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ironsheep/shadow-matte-mcp/internal/imaging"
	"github.com/ironsheep/shadow-matte-mcp/internal/matting"
)

// MaxBatchSize caps how many images one batch request may carry. Larger
// workloads must be split by the caller; the cap keeps a single request
// from pinning unbounded memory in decoded rasters.
const MaxBatchSize = 50

// BatchRequest describes one batch run.
type BatchRequest struct {
	// Paths lists the input image files, at most MaxBatchSize of them.
	Paths []string

	// Params is applied unchanged to every image in the batch.
	Params matting.Params

	// Concurrency bounds the worker pool. Zero or negative selects
	// runtime.NumCPU(), and the pool never exceeds the batch size.
	Concurrency int

	// MaxDimension, when positive, downscales inputs so neither side
	// exceeds it before processing. Zero processes at full resolution.
	MaxDimension int
}

// BatchItem is the outcome for a single image of a batch. Exactly one of
// Result and Err is set.
type BatchItem struct {
	Path   string
	Result *matting.Result
	Err    error
}

// BatchResult collects the per-image outcomes of a run, in input order.
type BatchResult struct {
	Items     []BatchItem
	Processed int
	Failed    int
}

// ProgressFunc is invoked once per completed image, successful or not.
// done counts completed images so far. Callbacks are serialized; a slow
// callback throttles the pool but never reorders notifications against
// completion.
type ProgressFunc func(done, total int, path string, err error)

// Processor runs batches against a shared raster cache.
type Processor struct {
	Cache *imaging.RasterCache
}

// NewProcessor creates a processor around the given cache.
func NewProcessor(cache *imaging.RasterCache) *Processor {
	return &Processor{Cache: cache}
}

// Run processes every image in the request and returns the per-image
// outcomes in input order.
//
// Run fails outright only for an invalid request (empty batch or one over
// MaxBatchSize). Per-image errors, decode failures included, are isolated
// into the corresponding BatchItem.
func (p *Processor) Run(req BatchRequest, progress ProgressFunc) (*BatchResult, error) {
	total := len(req.Paths)
	if total == 0 {
		return nil, fmt.Errorf("batch is empty")
	}
	if total > MaxBatchSize {
		return nil, fmt.Errorf("batch of %d images exceeds the limit of %d", total, MaxBatchSize)
	}

	workers := req.Concurrency
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > total {
		workers = total
	}

	items := make([]BatchItem, total)
	jobs := make(chan int)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		done int
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := req.Paths[i]
				result, err := p.processOne(path, req)
				items[i] = BatchItem{Path: path, Result: result, Err: err}

				mu.Lock()
				done++
				if progress != nil {
					progress(done, total, path, err)
				}
				mu.Unlock()
			}
		}()
	}

	for i := range req.Paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := &BatchResult{Items: items}
	for _, it := range items {
		if it.Err != nil {
			out.Failed++
		} else {
			out.Processed++
		}
	}
	return out, nil
}

func (p *Processor) processOne(path string, req BatchRequest) (*matting.Result, error) {
	r, err := p.Cache.Load(path)
	if err != nil {
		return nil, err
	}
	r = imaging.FitRaster(r, req.MaxDimension)
	return matting.Process(r, req.Params)
}

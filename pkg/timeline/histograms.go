package timeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/pmdartus/speedline/pkg/ports"
)

// HistogramStage computes the histogram of every frame of a timeline in parallel.
// Frames memoize their histograms, so the returned Result shares them with the input.
type HistogramStage struct {
	logger     ports.Logger
	numWorkers int
}

// NewHistogramStage creates a new histogram stage.
// numWorkers <= 0 uses one worker per CPU.
func NewHistogramStage(logger ports.Logger, numWorkers int) *HistogramStage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &HistogramStage{
		logger:     logger.WithComponent("histogram"),
		numWorkers: numWorkers,
	}
}

// Execute computes all histograms. The first failure is returned.
func (s *HistogramStage) Execute(ctx context.Context, input Result) (Result, error) {
	numFrames := len(input.Frames)
	if numFrames == 0 {
		return input, nil
	}

	workers := s.numWorkers
	if workers > numFrames {
		workers = numFrames
	}
	s.logger.Debug("Computing %d histograms with %d workers", numFrames, workers)

	jobs := make(chan int, numFrames)
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, jobs, errChan)
	}

	for i := 0; i < numFrames; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.logger.Debug("Histograms completed")
	return input, nil
}

// worker computes histograms for frame indexes received on jobs.
func (s *HistogramStage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input Result,
	jobs <-chan int,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := input.Frames[idx].Histogram(ctx); err != nil {
			select {
			case errChan <- fmt.Errorf("histogram of frame %d: %w", idx, err):
			default:
			}
			return
		}
	}
}

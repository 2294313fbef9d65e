package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// New groups the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkers builds the workers enabled by cfg. The value-log GC worker
// runs only when an interval is set and the storage backend has a value log.
func NewWorkers(cfg config.Workers, storages *store.Storages, observer GCObserver, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.GCInterval > 0 && storages.Collector != nil {
		w.workers = append(w.workers, NewGCWorker(storages.Collector, cfg.GCInterval, observer, logger))
	}

	return w
}

// Len reports the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

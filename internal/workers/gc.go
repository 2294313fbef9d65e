// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

// GCWorker periodically reclaims space from the record store's value log.
type GCWorker struct {
	collector store.ValueLogCollector
	interval  time.Duration
	observer  GCObserver

	logger *logger.Logger
}

// NewGCWorker returns a worker calling collector every interval. observer
// may be nil.
func NewGCWorker(collector store.ValueLogCollector, interval time.Duration, observer GCObserver, logger *logger.Logger) *GCWorker {
	return &GCWorker{
		collector: collector,
		interval:  interval,
		observer:  observer,
		logger:    logger,
	}
}

// Run collects once per tick until ctx is done. A failed run is logged and
// the next tick tries again.
func (g *GCWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.logger.Info().Dur("interval", g.interval).Msg("value log GC worker started")

	for {
		select {
		case <-ctx.Done():
			g.logger.Info().Msg("value log GC worker stopped")
			return
		case <-ticker.C:
			g.collect(ctx)
		}
	}
}

func (g *GCWorker) collect(ctx context.Context) {
	start := time.Now()
	err := g.collector.RunValueLogGC(ctx)

	if g.observer != nil {
		g.observer.ObserveGC(err)
	}

	if err != nil {
		g.logger.Err(err).Msg("value log GC failed")
		return
	}

	g.logger.Debug().Dur("duration", time.Since(start)).Msg("value log GC finished")
}

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// several workers until their context is cancelled.
package workers

import "context"

// Worker is a background task. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// GCObserver receives the outcome of every garbage collection run.
type GCObserver interface {
	ObserveGC(err error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

// mockWorker counts Run calls and blocks until ctx is done.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

type recordingObserver struct {
	mu   sync.Mutex
	errs []error
}

func (o *recordingObserver) ObserveGC(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errs = append(o.errs, err)
}

func (o *recordingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.errs)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
	assert.Equal(t, 0, ws.Len())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mock.NewMockValueLogCollector(ctrl)

	tests := []struct {
		name     string
		cfg      config.Workers
		storages *store.Storages
		want     int
	}{
		{name: "gc enabled", cfg: config.Workers{GCInterval: time.Minute}, storages: &store.Storages{Collector: collector}, want: 1},
		{name: "zero interval", cfg: config.Workers{}, storages: &store.Storages{Collector: collector}, want: 0},
		{name: "no collector", cfg: config.Workers{GCInterval: time.Minute}, storages: &store.Storages{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.cfg, tt.storages, nil, logger.Nop())
			assert.Equal(t, tt.want, ws.Len())
		})
	}
}

func TestGCWorker_RunsEveryTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mock.NewMockValueLogCollector(ctrl)
	collector.EXPECT().RunValueLogGC(gomock.Any()).Return(nil).MinTimes(2)

	obs := &recordingObserver{}
	w := NewGCWorker(collector, 5*time.Millisecond, obs, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return obs.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	obs.mu.Lock()
	defer obs.mu.Unlock()
	for _, err := range obs.errs {
		assert.NoError(t, err)
	}
}

func TestGCWorker_ContinuesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mock.NewMockValueLogCollector(ctrl)
	gcErr := errors.New("gc failed")
	gomock.InOrder(
		collector.EXPECT().RunValueLogGC(gomock.Any()).Return(gcErr),
		collector.EXPECT().RunValueLogGC(gomock.Any()).Return(nil).AnyTimes(),
	)

	obs := &recordingObserver{}
	w := NewGCWorker(collector, 5*time.Millisecond, obs, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return obs.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	obs.mu.Lock()
	defer obs.mu.Unlock()
	assert.ErrorIs(t, obs.errs[0], gcErr)
	assert.NoError(t, obs.errs[1])
}

func TestGCWorker_NilObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := mock.NewMockValueLogCollector(ctrl)
	collector.EXPECT().RunValueLogGC(gomock.Any()).Return(nil)

	w := NewGCWorker(collector, time.Hour, nil, logger.Nop())
	w.collect(context.Background())
}

func TestGCWorker_BadgerInMemory(t *testing.T) {
	s, err := store.NewInMemoryBadgerRecordStore(logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	obs := &recordingObserver{}
	NewGCWorker(s, time.Hour, obs, logger.Nop()).collect(context.Background())

	require.Equal(t, 1, obs.count())
	assert.NoError(t, obs.errs[0])
}

func TestNew(t *testing.T) {
	assert.Equal(t, 2, New(&mockWorker{}, &mockWorker{}).Len())
	assert.Equal(t, 0, New().Len())
}

package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService records batch submissions; the other CatalogService methods are
// never reached by the pool.
type stubService struct {
	service.CatalogService

	mu      sync.Mutex
	batches [][]model.ProductItem
	callers []string
}

func (s *stubService) BulkUpsertProducts(ctx context.Context, callerID string, req model.BulkUpsertProductsReq) (*model.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]model.ProductItem, len(req.Items))
	copy(items, req.Items)
	s.batches = append(s.batches, items)
	s.callers = append(s.callers, callerID)
	return &model.BulkResult{UpsertedCount: int64(len(req.Items))}, nil
}

func (s *stubService) snapshot() [][]model.ProductItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]model.ProductItem, len(s.batches))
	copy(out, s.batches)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func items(skus ...string) []model.ProductItem {
	out := make([]model.ProductItem, 0, len(skus))
	for _, sku := range skus {
		out = append(out, model.ProductItem{SKU: sku, Name: "Item " + sku})
	}
	return out
}

func TestPoolFlushesAtBatchSize(t *testing.T) {
	svc := &stubService{}
	pool := NewPool(svc, Config{
		Workers:       1,
		QueueSize:     16,
		BatchSize:     3,
		FlushInterval: time.Hour, // size-triggered flush only
	})
	pool.Start()
	defer pool.Stop(context.Background())

	require.NoError(t, pool.Submit(Job{ID: "j1", SubmittedBy: "u_1", Items: items("A", "B")}))
	require.NoError(t, pool.Submit(Job{ID: "j2", SubmittedBy: "u_2", Items: items("C")}))

	waitFor(t, 2*time.Second, func() bool { return len(svc.snapshot()) == 1 })

	batches := svc.snapshot()
	assert.Len(t, batches[0], 3)

	svc.mu.Lock()
	assert.Equal(t, "u_1", svc.callers[0])
	svc.mu.Unlock()
}

func TestPoolFlushesOnInterval(t *testing.T) {
	svc := &stubService{}
	pool := NewPool(svc, Config{
		Workers:       1,
		QueueSize:     16,
		BatchSize:     100,
		FlushInterval: 20 * time.Millisecond,
	})
	pool.Start()
	defer pool.Stop(context.Background())

	require.NoError(t, pool.Submit(Job{ID: "j1", SubmittedBy: "u_1", Items: items("A")}))

	waitFor(t, 2*time.Second, func() bool { return len(svc.snapshot()) == 1 })
	assert.Len(t, svc.snapshot()[0], 1)
}

func TestPoolDrainsOnStop(t *testing.T) {
	svc := &stubService{}
	pool := NewPool(svc, Config{
		Workers:       2,
		QueueSize:     16,
		BatchSize:     100,
		FlushInterval: time.Hour,
	})
	pool.Start()

	require.NoError(t, pool.Submit(Job{ID: "j1", SubmittedBy: "u_1", Items: items("A", "B")}))
	require.NoError(t, pool.Submit(Job{ID: "j2", SubmittedBy: "u_1", Items: items("C")}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, pool.Stop(ctx))

	total := 0
	for _, batch := range svc.snapshot() {
		total += len(batch)
	}
	assert.Equal(t, 3, total)
}

func TestPoolSubmitAfterStop(t *testing.T) {
	svc := &stubService{}
	pool := NewPool(svc, Config{Workers: 1, QueueSize: 4, BatchSize: 1, FlushInterval: time.Hour})
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	err := pool.Submit(Job{ID: "j1", SubmittedBy: "u_1", Items: items("A")})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestPoolSubmitDuringStop(t *testing.T) {
	// Submitters racing a concurrent Stop must get a clean error, never a
	// send on the closed queue.
	for iter := 0; iter < 50; iter++ {
		svc := &stubService{}
		pool := NewPool(svc, Config{Workers: 2, QueueSize: 4, BatchSize: 1, FlushInterval: time.Hour})
		pool.Start()

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				err := pool.Submit(Job{ID: "j", SubmittedBy: "u_1", Items: items("A")})
				if err != nil {
					assert.True(t, err == ErrStopped || err == ErrQueueFull, "unexpected error: %v", err)
				}
			}()
		}

		close(start)
		require.NoError(t, pool.Stop(context.Background()))
		wg.Wait()
	}
}

func TestPoolQueueFull(t *testing.T) {
	svc := &stubService{}
	// No workers started: the buffered queue fills up
	pool := NewPool(svc, Config{Workers: 1, QueueSize: 1, BatchSize: 1, FlushInterval: time.Hour})

	require.NoError(t, pool.Submit(Job{ID: "j1", SubmittedBy: "u_1", Items: items("A")}))
	err := pool.Submit(Job{ID: "j2", SubmittedBy: "u_1", Items: items("B")})
	assert.ErrorIs(t, err, ErrQueueFull)
}

package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/service"
	"catalog7/internal/catalog/util"
)

var ErrQueueFull = errors.New("ingest queue is full")
var ErrStopped = errors.New("ingest pool is stopped")

// Job is one ingestion request pulled off the queue. Jobs from several
// submitters may end up in the same batch; the batch write is attributed to
// the first submitter and each job keeps its own ID for tracing.
type Job struct {
	ID          string
	SubmittedBy string
	Items       []model.ProductItem
}

// Config sizes the pool. Workers drain the shared queue concurrently and
// each flushes its batch at BatchSize items or FlushInterval, whichever
// comes first.
type Config struct {
	Workers       int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	FlushTimeout  time.Duration
}

type Pool struct {
	svc service.CatalogService
	cfg Config

	jobs chan Job
	wg   sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

func NewPool(svc service.CatalogService, cfg Config) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 30 * time.Second
	}
	return &Pool{
		svc:  svc,
		cfg:  cfg,
		jobs: make(chan Job, cfg.QueueSize),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit enqueues a job without blocking. A full queue is the caller's
// signal to back off, not a reason to stall the request path. The lock is
// held across the send so Stop cannot close the queue mid-submit; the
// default arm keeps the critical section from blocking.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return ErrStopped
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for workers to flush what remains.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	logger := util.GetLogger().With("worker", id)

	ticker := time.NewTicker(p.cfg.FlushInterval)
	defer ticker.Stop()

	var pending []model.ProductItem
	var submitter string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		if submitter == "" {
			submitter = "ingest-worker"
		}

		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.FlushTimeout)
		defer cancel()

		req := model.BulkUpsertProductsReq{Items: pending}
		result, err := p.svc.BulkUpsertProducts(ctx, submitter, req)
		if err != nil {
			logger.Error("batch flush failed",
				"items", len(pending),
				"error", err,
			)
		} else {
			logger.Info("batch flushed",
				"items", len(pending),
				"upserted", result.UpsertedCount,
				"modified", result.ModifiedCount,
				"failed", result.FailedCount,
			)
		}

		pending = nil
		submitter = ""
	}

	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				flush()
				return
			}
			if submitter == "" {
				submitter = job.SubmittedBy
			}
			pending = append(pending, job.Items...)
			if len(pending) >= p.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

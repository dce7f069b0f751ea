package service

import (
	"context"

	"catalog7/internal/catalog/model"

	"github.com/cenkalti/backoff/v4"
)

// withBulkRetry runs op under the configured retry policy: exponentially
// increasing delay, capped at MaxInterval, at most MaxAttempts tries.
//
// Only transport-level errors are retried. A BulkResult that carries
// per-item failures is a completed (partial) success; resubmitting it would
// just replay the same deterministic rejections.
func (s *Service) withBulkRetry(ctx context.Context, op func() (*model.BulkResult, error)) (*model.BulkResult, int, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.Retry.InitialInterval
	b.MaxInterval = s.Retry.MaxInterval
	b.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.Retry.MaxAttempts-1)), ctx)

	attempts := 0
	result, err := backoff.RetryWithData(func() (*model.BulkResult, error) {
		attempts++
		return op()
	}, policy)
	if err != nil {
		return nil, attempts, err
	}
	return result, attempts, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/repository"
	"catalog7/internal/catalog/util"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict: record already exists")
)

type CatalogService interface {
	BulkUpsertProducts(ctx context.Context, callerID string, req model.BulkUpsertProductsReq) (*model.BulkResult, error)
	BulkDeleteProducts(ctx context.Context, callerID string, req model.BulkDeleteProductsReq) (*model.BulkResult, error)
	UpsertProduct(ctx context.Context, callerID string, req model.UpsertProductReq) error
	GetProduct(ctx context.Context, sku string) (*model.Product, error)
	ListProducts(ctx context.Context, req model.ListProductsReq) ([]*model.Product, error)
	ListProductSKUs(ctx context.Context) ([]string, error)

	SyncPosts(ctx context.Context, callerID string, req model.SyncPostsReq) (*model.SyncPostsResult, error)
	GetPost(ctx context.Context, slug string) (*model.Post, error)
	ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error)

	GetOperationLogs(ctx context.Context, req model.GetOperationLogsReq) (*model.GetOperationLogsResponse, error)
}

// RetryConfig bounds the backoff applied around bulk writes.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

type Service struct {
	Repo     repository.CatalogRepository
	Posts    repository.PostRepository
	OpsLog   repository.OperationLogRepository
	Retry    RetryConfig
	PostsDir string
	// SyncBatchSize caps how many posts go into one bulk write during a sync
	SyncBatchSize int
}

func NewService(repo repository.CatalogRepository, posts repository.PostRepository, opsLog repository.OperationLogRepository, retry RetryConfig, postsDir string) *Service {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &Service{
		Repo:          repo,
		Posts:         posts,
		OpsLog:        opsLog,
		Retry:         retry,
		PostsDir:      postsDir,
		SyncBatchSize: 500,
	}
}

// recordOperation appends an audit entry. Best effort: a log write failure
// must not fail the operation it describes.
func (s *Service) recordOperation(ctx context.Context, entry *model.OperationLog) {
	if s.OpsLog == nil {
		return
	}
	if err := s.OpsLog.CreateOperationLog(ctx, entry); err != nil {
		util.GetLogger().Warn("failed to record operation log",
			"operation", entry.Operation,
			"error", err,
		)
	}
}

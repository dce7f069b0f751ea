package repository

import (
	"context"
	"errors"

	"catalog7/internal/catalog/model"
)

var ErrDuplicate = errors.New("duplicate record")

type CatalogRepository interface {
	// Bulk upsert products keyed by SKU (partial success allowed)
	BulkUpsertProducts(ctx context.Context, products []*model.Product) (*model.BulkResult, error)
	// Bulk soft delete products by SKU
	BulkSoftDeleteProducts(ctx context.Context, skus []string, deletedBy string) (*model.BulkResult, error)
	// Upsert a single product (point write)
	UpsertProduct(ctx context.Context, product *model.Product) error
	// Find a product by SKU (excludes soft-deleted)
	FindProductBySKU(ctx context.Context, sku string) (*model.Product, error)
	// List products with filter
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
	// Count products matching the filter
	CountProducts(ctx context.Context, filter model.ProductFilter) (int64, error)
	// List every SKU, soft-deleted included, via a covered query on the
	// sku index (filtering on deleted would force document fetches)
	ListProductSKUs(ctx context.Context) ([]string, error)
	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
}

type PostRepository interface {
	// Bulk upsert posts keyed by slug (partial success allowed)
	BulkUpsertPosts(ctx context.Context, posts []*model.Post) (*model.BulkResult, error)
	// Soft delete every post whose slug is not in keepSlugs
	SoftDeletePostsExcept(ctx context.Context, keepSlugs []string, deletedBy string) (int64, error)
	// Find a post by slug (excludes soft-deleted)
	FindPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	// List posts with filter
	ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error)
	// Initialize post indexes
	EnsurePostIndexes(ctx context.Context) error
}

type OperationLogRepository interface {
	// CreateOperationLog appends one audit record (append-only)
	CreateOperationLog(ctx context.Context, entry *model.OperationLog) error
	// FindOperationLogs lists audit records with pagination and filtering
	FindOperationLogs(ctx context.Context, req model.GetOperationLogsReq) ([]*model.OperationLog, int64, error)
	// EnsureOpsLogIndexes creates indexes for efficient querying
	EnsureOpsLogIndexes(ctx context.Context) error
}

package service

import (
	"context"

	"catalog7/internal/catalog/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a shared mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) BulkUpsertProducts(ctx context.Context, products []*model.Product) (*model.BulkResult, error) {
	args := m.Called(ctx, products)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BulkResult), args.Error(1)
}

func (m *MockCatalogRepository) BulkSoftDeleteProducts(ctx context.Context, skus []string, deletedBy string) (*model.BulkResult, error) {
	args := m.Called(ctx, skus, deletedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BulkResult), args.Error(1)
}

func (m *MockCatalogRepository) UpsertProduct(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) CountProducts(ctx context.Context, filter model.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListProductSKUs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPostRepository mocks repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) BulkUpsertPosts(ctx context.Context, posts []*model.Post) (*model.BulkResult, error) {
	args := m.Called(ctx, posts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BulkResult), args.Error(1)
}

func (m *MockPostRepository) SoftDeletePostsExcept(ctx context.Context, keepSlugs []string, deletedBy string) (int64, error) {
	args := m.Called(ctx, keepSlugs, deletedBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) FindPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepository) EnsurePostIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockOperationLogRepository mocks repository.OperationLogRepository.
type MockOperationLogRepository struct {
	mock.Mock
}

func (m *MockOperationLogRepository) CreateOperationLog(ctx context.Context, entry *model.OperationLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOperationLogRepository) FindOperationLogs(ctx context.Context, req model.GetOperationLogsReq) ([]*model.OperationLog, int64, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.OperationLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockOperationLogRepository) EnsureOpsLogIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"catalog7/internal/catalog/handler"
	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/router"
	"catalog7/internal/catalog/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a shared mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) BulkUpsertProducts(ctx context.Context, callerID string, req model.BulkUpsertProductsReq) (*model.BulkResult, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BulkResult), args.Error(1)
}

func (m *MockCatalogService) BulkDeleteProducts(ctx context.Context, callerID string, req model.BulkDeleteProductsReq) (*model.BulkResult, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BulkResult), args.Error(1)
}

func (m *MockCatalogService) UpsertProduct(ctx context.Context, callerID string, req model.UpsertProductReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context, req model.ListProductsReq) ([]*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockCatalogService) ListProductSKUs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) SyncPosts(ctx context.Context, callerID string, req model.SyncPostsReq) (*model.SyncPostsResult, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SyncPostsResult), args.Error(1)
}

func (m *MockCatalogService) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockCatalogService) ListPosts(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockCatalogService) GetOperationLogs(ctx context.Context, req model.GetOperationLogsReq) (*model.GetOperationLogsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GetOperationLogsResponse), args.Error(1)
}

// SetupServer wires the mock service into a full Echo instance, with an idle
// (not started) worker pool backing the async endpoint.
func SetupServer(svc *MockCatalogService) *echo.Echo {
	pool := worker.NewPool(svc, worker.Config{Workers: 1, QueueSize: 8, BatchSize: 100, FlushInterval: 0})
	h := handler.NewCatalogHandler(svc, pool)
	e := echo.New()
	router.RegisterRoutes(e, h)
	return e
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

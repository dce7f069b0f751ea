package service

import (
	"context"
	"strings"
	"time"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/util"
)

func productFromItem(item model.ProductItem, callerID string) *model.Product {
	return &model.Product{
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		Brand:       item.Brand,
		PriceCents:  item.PriceCents,
		Quantity:    item.Quantity,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
	}
}

func (s *Service) BulkUpsertProducts(ctx context.Context, callerID string, req model.BulkUpsertProductsReq) (*model.BulkResult, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	// An empty batch is a successful no-op; no round trip
	if len(req.Items) == 0 {
		return &model.BulkResult{}, nil
	}

	items := req.Dedupe()
	products := make([]*model.Product, 0, len(items))
	for _, item := range items {
		products = append(products, productFromItem(item, callerID))
	}

	start := time.Now()
	result, attempts, err := s.withBulkRetry(ctx, func() (*model.BulkResult, error) {
		return s.Repo.BulkUpsertProducts(ctx, products)
	})
	if err != nil {
		return nil, err
	}

	s.recordOperation(ctx, &model.OperationLog{
		Operation: model.OpBulkUpsertProducts,
		CallerID:  callerID,
		ItemCount: len(products),
		Inserted:  result.UpsertedCount,
		Modified:  result.ModifiedCount,
		Failed:    result.FailedCount,
		Duration:  time.Since(start).Milliseconds(),
		Attempts:  attempts,
	})

	util.GetLogger().Info("bulk upsert products",
		"caller", callerID,
		"items", len(products),
		"upserted", result.UpsertedCount,
		"modified", result.ModifiedCount,
		"failed", result.FailedCount,
		"attempts", attempts,
	)

	return result, nil
}

func (s *Service) BulkDeleteProducts(ctx context.Context, callerID string, req model.BulkDeleteProductsReq) (*model.BulkResult, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	if len(req.SKUs) == 0 {
		return &model.BulkResult{}, nil
	}

	start := time.Now()
	result, attempts, err := s.withBulkRetry(ctx, func() (*model.BulkResult, error) {
		return s.Repo.BulkSoftDeleteProducts(ctx, req.SKUs, callerID)
	})
	if err != nil {
		return nil, err
	}

	s.recordOperation(ctx, &model.OperationLog{
		Operation: model.OpBulkDeleteProducts,
		CallerID:  callerID,
		ItemCount: len(req.SKUs),
		Deleted:   result.DeletedCount,
		Failed:    result.FailedCount,
		Duration:  time.Since(start).Milliseconds(),
		Attempts:  attempts,
	})

	return result, nil
}

func (s *Service) UpsertProduct(ctx context.Context, callerID string, req model.UpsertProductReq) error {
	if callerID == "" {
		return ErrUnauthorized
	}

	product := &model.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		PriceCents:  req.PriceCents,
		Quantity:    req.Quantity,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
	}

	start := time.Now()
	if err := s.Repo.UpsertProduct(ctx, product); err != nil {
		return err
	}

	s.recordOperation(ctx, &model.OperationLog{
		Operation: model.OpUpsertProduct,
		CallerID:  callerID,
		ItemCount: 1,
		Modified:  1,
		Duration:  time.Since(start).Milliseconds(),
		Attempts:  1,
	})

	return nil
}

func (s *Service) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, ErrBadRequest
	}

	product, err := s.Repo.FindProductBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context, req model.ListProductsReq) ([]*model.Product, error) {
	products, err := s.Repo.ListProducts(ctx, req.ToFilter())
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*model.Product{}
	}
	return products, nil
}

func (s *Service) ListProductSKUs(ctx context.Context) ([]string, error) {
	skus, err := s.Repo.ListProductSKUs(ctx)
	if err != nil {
		return nil, err
	}
	if skus == nil {
		skus = []string{}
	}
	return skus, nil
}

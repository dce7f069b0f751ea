package handler

import (
	"net/http"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PostProductsBatch handles POST /products/batch
func (h *CatalogHandler) PostProductsBatch(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.BulkUpsertProductsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.BulkUpsertProducts(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PostProductsBatchAsync handles POST /products/batch/async: the request is
// queued for the worker pool and acknowledged with 202.
func (h *CatalogHandler) PostProductsBatchAsync(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.BulkUpsertProductsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	job := worker.Job{
		ID:          uuid.NewString(),
		SubmittedBy: callerID,
		Items:       req.Dedupe(),
	}
	if err := h.Pool.Submit(job); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"status": "queued",
		"job_id": job.ID,
	})
}

// PutProductsDelete handles PUT /products/delete (bulk soft delete)
func (h *CatalogHandler) PutProductsDelete(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.BulkDeleteProductsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.BulkDeleteProducts(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// PutProduct handles PUT /products (single point write)
func (h *CatalogHandler) PutProduct(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpsertProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	if err := h.Service.UpsertProduct(c.Request().Context(), callerID, req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetProduct handles GET /products/:sku
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.Service.GetProduct(c.Request().Context(), c.Param("sku"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, product)
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c echo.Context) error {
	var req model.ListProductsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	products, err := h.Service.ListProducts(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, products)
}

// GetProductSKUs handles GET /products/skus
func (h *CatalogHandler) GetProductSKUs(c echo.Context) error {
	skus, err := h.Service.ListProductSKUs(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"skus": skus})
}

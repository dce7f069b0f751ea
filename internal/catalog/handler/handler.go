package handler

import (
	"net/http"

	"catalog7/internal/catalog/service"
	"catalog7/internal/catalog/worker"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Service service.CatalogService
	Pool    *worker.Pool
}

func NewCatalogHandler(s service.CatalogService, pool *worker.Pool) *CatalogHandler {
	return &CatalogHandler{Service: s, Pool: pool}
}

func (h *CatalogHandler) extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get("x-user-id")
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

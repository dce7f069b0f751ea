package handler

import (
	"net/http"
	"strconv"

	"catalog7/internal/catalog/model"

	"github.com/labstack/echo/v4"
)

// PostPostsSync handles POST /posts/sync
func (h *CatalogHandler) PostPostsSync(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.SyncPostsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.SyncPosts(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

// GetPost handles GET /posts/:slug
func (h *CatalogHandler) GetPost(c echo.Context) error {
	post, err := h.Service.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, post)
}

// GetPosts handles GET /posts
func (h *CatalogHandler) GetPosts(c echo.Context) error {
	filter := model.PostFilter{
		Tag: c.QueryParam("tag"),
	}
	if v := c.QueryParam("include_drafts"); v != "" {
		filter.IncludeDrafts, _ = strconv.ParseBool(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		filter.Limit, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.QueryParam("offset"); v != "" {
		filter.Offset, _ = strconv.ParseInt(v, 10, 64)
	}

	posts, err := h.Service.ListPosts(c.Request().Context(), filter)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetOperationLogs handles GET /operations
func (h *CatalogHandler) GetOperationLogs(c echo.Context) error {
	_, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GetOperationLogsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	result, err := h.Service.GetOperationLogs(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	return c.JSON(http.StatusOK, result)
}

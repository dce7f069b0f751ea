package handler

import (
	"net/http"

	"catalog7/internal/catalog/model"
	"catalog7/internal/catalog/service"
	"catalog7/internal/catalog/worker"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, interface{}) {
	var code string
	var msg string
	var status int

	switch err {
	case service.ErrUnauthorized:
		status = http.StatusUnauthorized
		code = "unauthorized"
		msg = "Unauthorized"
	case service.ErrBadRequest:
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	case service.ErrNotFound:
		status = http.StatusNotFound
		code = "not_found"
		msg = "Record not found"
	case service.ErrConflict:
		status = http.StatusConflict
		code = "conflict"
		msg = "Record already exists"
	case worker.ErrQueueFull:
		status = http.StatusServiceUnavailable
		code = "queue_full"
		msg = "Ingest queue is full, retry later"
	case worker.ErrStopped:
		status = http.StatusServiceUnavailable
		code = "shutting_down"
		msg = "Service is shutting down"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func validationError(err error) interface{} {
	if e, ok := err.(*model.ErrorDetail); ok {
		return model.ErrorResponse{Error: *e}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}

package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The helpers below build the handlers that only differ in the service call.
// Reads answer 200 with the raw JSON, writes answer 204.

func list[T any](h *Handler, fetch func(context.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := fetch(c.Request.Context())
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func search[Q, T any](h *Handler, fetch func(context.Context, Q) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q Q
		if !bindQuery(c, &q) {
			return
		}
		rows, err := fetch(c.Request.Context(), q)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func getByID[T any](h *Handler, param string, fetch func(context.Context, uuid.UUID) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, param)
		if !ok {
			return
		}
		v, err := fetch(c.Request.Context(), id)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// byQueryID serves lists scoped by a required id in the query string.
func byQueryID[T any](h *Handler, param string, fetch func(context.Context, uuid.UUID) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.queryID(c, param)
		if !ok {
			return
		}
		rows, err := fetch(c.Request.Context(), id)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func create[R any](h *Handler, save func(context.Context, R) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if !bindJSON(c, &req) {
			return
		}
		if err := save(c.Request.Context(), req); err != nil {
			h.handleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// createNumbered answers 201 with the formatted id drawn for the new row.
func createNumbered[R any](h *Handler, save func(context.Context, R) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if !bindJSON(c, &req) {
			return
		}
		formattedID, err := save(c.Request.Context(), req)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"formattedId": formattedID})
	}
}

func update[R any](h *Handler, param string, save func(context.Context, uuid.UUID, R) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, param)
		if !ok {
			return
		}
		var req R
		if !bindJSON(c, &req) {
			return
		}
		if err := save(c.Request.Context(), id, req); err != nil {
			h.handleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func remove(h *Handler, param string, del func(context.Context, uuid.UUID) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.pathID(c, param)
		if !ok {
			return
		}
		if err := del(c.Request.Context(), id); err != nil {
			h.handleError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-service/internal/apierror"
	"freight-service/internal/dto"
	"freight-service/internal/http/middleware"
)

func (h *Handler) registerUsers(users *gin.RouterGroup, manager gin.HandlerFunc) {
	users.GET("/current", h.currentUser)
	users.PUT("/current/:id", h.updateCurrentUser)
	users.PUT("/current/:id/password", h.changePassword)

	admin := users.Group("", manager)
	{
		admin.GET("", h.listUsers)
		admin.GET("/:id", h.getUser)
		admin.POST("", h.createUser)
		admin.PUT("/:id", h.updateUser)
		admin.PUT("/:id/password", h.resetPassword)
		admin.DELETE("/:id", h.deleteUser)
	}
}

func (h *Handler) signin(c *gin.Context) {
	var req dto.SigninRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.svc.Users.Signin(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) currentUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		apierror.Abort(c, http.StatusUnauthorized, "missing principal")
		return
	}

	user, err := h.svc.Users.Current(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) updateCurrentUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		apierror.Abort(c, http.StatusUnauthorized, "missing principal")
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UserNameRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.UpdateCurrent(c.Request.Context(), principal, id, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) changePassword(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		apierror.Abort(c, http.StatusUnauthorized, "missing principal")
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PasswordChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.ChangePassword(c.Request.Context(), principal, id, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.svc.Users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.svc.Users.View(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) createUser(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.Create(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.Update(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) resetPassword(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PasswordResetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.ResetPassword(c.Request.Context(), id, req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

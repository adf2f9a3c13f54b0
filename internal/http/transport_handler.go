package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-service/internal/dto"
	"freight-service/internal/http/middleware"
	"freight-service/internal/service"
)

var (
	driverDocuments = []string{"dniImage", "licenseImage", "contractImage"}
	unitDocuments   = []string{"technicalReviewImage", "mtcImage", "propertyCardImage", "soatImage"}
)

func (h *Handler) registerTransports(r *gin.RouterGroup) {
	transports := r.Group("/transports")
	{
		transports.GET("/compressed", list(h, h.svc.Transports.Compressed))
		transports.GET("/dropdownlist", list(h, h.svc.Transports.Dropdown))
		transports.GET("/expanded/:id", getByID(h, "id", h.svc.Transports.Get))
		transports.POST("", create(h, h.svc.Transports.Create))
		transports.PUT("/:id", update(h, "id", h.svc.Transports.Update))
		transports.DELETE("/:id", remove(h, "id", h.svc.Transports.Delete))
	}

	drivers := r.Group("/drivers")
	{
		drivers.GET("/compressed", search(h, h.svc.Drivers.Compressed))
		drivers.GET("/dropdownlist", byQueryID(h, "transportId", h.svc.Drivers.Dropdown))
		drivers.GET("/expanded/:id", getByID(h, "id", h.svc.Drivers.Get))
		drivers.POST("", h.uploads.Stage(driverDocuments...), h.createDriver)
		drivers.PUT("/:id", h.uploads.Stage(driverDocuments...), h.updateDriver)
		drivers.DELETE("/:id", remove(h, "id", h.svc.Drivers.Delete))
	}

	units := r.Group("/units")
	{
		units.GET("/compressed", search(h, h.svc.Units.Compressed))
		units.GET("/dropdownlist", byQueryID(h, "transportId", h.svc.Units.Dropdown))
		units.GET("/dropdownlist/bodyTypes", h.bodyTypes)
		units.GET("/expanded/:id", getByID(h, "id", h.svc.Units.Get))
		units.POST("", h.uploads.Stage(unitDocuments...), h.createUnit)
		units.PUT("/:id", h.uploads.Stage(unitDocuments...), h.updateUnit)
		units.DELETE("/:id", remove(h, "id", h.svc.Units.Delete))
	}

	policies := r.Group("/policies")
	{
		policies.GET("", list(h, h.svc.Policies.List))
		policies.GET("/dropdownlist", list(h, h.svc.Policies.Dropdown))
		policies.GET("/:id", getByID(h, "id", h.svc.Policies.Get))
		policies.POST("", h.uploads.Stage(service.ImageField), h.createPolicy)
		policies.PUT("/:id", update(h, "id", h.svc.Policies.Update))
		policies.DELETE("/:id", remove(h, "id", h.svc.Policies.Delete))
	}

	sctrs := r.Group("/sctrs")
	{
		sctrs.GET("", list(h, h.svc.Sctrs.List))
		sctrs.GET("/dropdownlist", list(h, h.svc.Sctrs.Dropdown))
		sctrs.GET("/:id", getByID(h, "id", h.svc.Sctrs.Get))
		sctrs.POST("", h.uploads.Stage(service.ImageField), h.createSctr)
		sctrs.PUT("/:id", update(h, "id", h.svc.Sctrs.Update))
		sctrs.DELETE("/:id", remove(h, "id", h.svc.Sctrs.Delete))
	}
}

func (h *Handler) createDriver(c *gin.Context) {
	var req dto.DriverRequest
	if !bindForm(c, &req) {
		return
	}

	if err := h.svc.Drivers.Create(c.Request.Context(), req, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	patch, ok := formPatch(c)
	if !ok {
		return
	}

	if err := h.svc.Drivers.Update(c.Request.Context(), id, patch, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) bodyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Units.BodyTypes())
}

func (h *Handler) createUnit(c *gin.Context) {
	var req dto.UnitRequest
	if !bindForm(c, &req) {
		return
	}

	if err := h.svc.Units.Create(c.Request.Context(), req, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) updateUnit(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	patch, ok := formPatch(c)
	if !ok {
		return
	}

	if err := h.svc.Units.Update(c.Request.Context(), id, patch, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) createPolicy(c *gin.Context) {
	var req dto.PolicyRequest
	if !bindForm(c, &req) {
		return
	}

	if err := h.svc.Policies.Create(c.Request.Context(), req, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) createSctr(c *gin.Context) {
	var req dto.SctrRequest
	if !bindForm(c, &req) {
		return
	}

	if err := h.svc.Sctrs.Create(c.Request.Context(), req, middleware.Staged(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

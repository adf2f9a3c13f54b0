package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-service/internal/dto"
)

func (h *Handler) registerClients(r *gin.RouterGroup) {
	clients := r.Group("/clients")
	{
		clients.GET("", list(h, h.svc.Clients.List))
		clients.GET("/dropdownlist", list(h, h.svc.Clients.Dropdown))
		clients.GET("/:id", getByID(h, "id", h.svc.Clients.Get))
		clients.GET("/:id/freights", h.clientFreights)
		clients.POST("", create(h, h.svc.Clients.Create))
		clients.PUT("/:id", update(h, "id", h.svc.Clients.Update))
		clients.DELETE("/:id", remove(h, "id", h.svc.Clients.Delete))
	}

	products := r.Group("/products")
	{
		products.GET("/compressed", search(h, h.svc.Products.Compressed))
		products.GET("/dropdownlist", byQueryID(h, "clientId", h.svc.Products.Dropdown))
		products.GET("/expanded/:id", getByID(h, "id", h.svc.Products.Get))
		products.POST("", create(h, h.svc.Products.Create))
		products.PUT("/:id", update(h, "id", h.svc.Products.Update))
		products.DELETE("/:id", remove(h, "id", h.svc.Products.Delete))
	}

	routes := r.Group("/routes")
	{
		routes.GET("/compressed", search(h, h.svc.Routes.Compressed))
		routes.GET("/dropdownlist", byQueryID(h, "clientId", h.svc.Routes.Dropdown))
		routes.GET("/expanded/:id", getByID(h, "id", h.svc.Routes.Get))
		routes.POST("", create(h, h.svc.Routes.Create))
		routes.PUT("/:id", update(h, "id", h.svc.Routes.Update))
		routes.DELETE("/:id", remove(h, "id", h.svc.Routes.Delete))
	}

	services := r.Group("/services")
	{
		services.GET("", list(h, h.svc.Services.List))
		services.GET("/dropdownlist", list(h, h.svc.Services.Dropdown))
		services.GET("/expanded/:id", getByID(h, "id", h.svc.Services.Get))
		services.POST("", create(h, h.svc.Services.Create))
		services.PUT("/:id", update(h, "id", h.svc.Services.Update))
		services.DELETE("/:id", remove(h, "id", h.svc.Services.Delete))
	}
}

// clientFreights lists the client's freights with or without a sale
// settlement detail in the date range.
func (h *Handler) clientFreights(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var q dto.ClientFreightsQuery
	if !bindQuery(c, &q) {
		return
	}

	rows, err := h.svc.Clients.Freights(c.Request.Context(), id, q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"freight-service/internal/dto"
)

func (h *Handler) registerFreights(r *gin.RouterGroup) {
	freights := r.Group("/freights")
	{
		freights.GET("/paginated/compressed", search(h, h.svc.Freights.Search))
		freights.GET("/notLiquidated/compressed", search(h, h.svc.Freights.NotLiquidated))
		freights.GET("/compressed", byQueryID(h, "expenseSettlementId", h.svc.Freights.ByExpenseSettlement))
		freights.GET("/expanded/id/:id", getByID(h, "id", h.svc.Freights.Get))
		freights.GET("/expanded/formattedId/:formattedId", h.freightByFormattedID)
		freights.GET("/:id/outputs", getByID(h, "id", h.svc.Freights.Outputs))
		freights.POST("", createNumbered(h, h.svc.Freights.Create))
		freights.PUT("/:id", update(h, "id", h.svc.Freights.Update))
		freights.PATCH("", h.reconcileFreights)
		freights.DELETE("/:id", remove(h, "id", h.svc.Freights.Delete))
	}

	products := r.Group("/transportedProducts")
	{
		products.GET("", byQueryID(h, "freightId", h.svc.TransportedProducts.ByFreight))
		products.GET("/:id", getByID(h, "id", h.svc.TransportedProducts.Get))
		products.POST("", create(h, h.svc.TransportedProducts.Create))
		products.DELETE("/:id", remove(h, "id", h.svc.TransportedProducts.Delete))
	}
}

func (h *Handler) freightByFormattedID(c *gin.Context) {
	freight, err := h.svc.Freights.GetByFormattedID(c.Request.Context(), strings.TrimSpace(c.Param("formattedId")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, freight)
}

// reconcileFreights attaches the freights named in the query string to the
// settlement in the body, or releases them when it is null.
func (h *Handler) reconcileFreights(c *gin.Context) {
	var req dto.ReconcileRequest
	if !bindJSON(c, &req) {
		return
	}
	req.FreightIDs = c.QueryArray("freightId")

	if err := h.svc.Freights.Reconcile(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) registerOutputs(r *gin.RouterGroup) {
	banks := r.Group("/banks")
	{
		banks.GET("", list(h, h.svc.Banks.List))
		banks.GET("/dropdownlist", list(h, h.svc.Banks.Dropdown))
		banks.GET("/:id", getByID(h, "id", h.svc.Banks.Get))
		banks.POST("", create(h, h.svc.Banks.Create))
		banks.PUT("/:id", update(h, "id", h.svc.Banks.Update))
		banks.DELETE("/:id", remove(h, "id", h.svc.Banks.Delete))
	}

	types := r.Group("/outputTypes")
	{
		types.GET("", list(h, h.svc.OutputTypes.List))
		types.GET("/dropdownlist", list(h, h.svc.OutputTypes.Dropdown))
		types.GET("/:id", getByID(h, "id", h.svc.OutputTypes.Get))
		types.POST("", create(h, h.svc.OutputTypes.Create))
		types.PUT("/:id", update(h, "id", h.svc.OutputTypes.Update))
		types.DELETE("/:id", remove(h, "id", h.svc.OutputTypes.Delete))
	}

	outputs := r.Group("/outputs")
	{
		outputs.GET("", search(h, h.svc.Outputs.List))
		outputs.GET("/op/getDepositsByFreights", h.depositsByFreights)
		outputs.GET("/:id", getByID(h, "id", h.svc.Outputs.Get))
		outputs.POST("", create(h, h.svc.Outputs.Create))
		outputs.PUT("/:id", update(h, "id", h.svc.Outputs.Update))
		outputs.DELETE("/:id", remove(h, "id", h.svc.Outputs.Delete))
	}
}

// depositsByFreights sums the outputs booked against the freights given as
// repeated freightId parameters.
func (h *Handler) depositsByFreights(c *gin.Context) {
	sum, err := h.svc.Outputs.Deposits(c.Request.Context(), c.QueryArray("freightId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deposits": sum.String()})
}

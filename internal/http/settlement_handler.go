package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"freight-service/internal/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) registerSettlements(r *gin.RouterGroup) {
	expense := r.Group("/expenseSettlements")
	{
		expense.GET("", search(h, h.svc.ExpenseSettlements.Report))
		expense.GET("/export", h.exportExpenseSettlements)
		expense.GET("/:id", getByID(h, "id", h.svc.ExpenseSettlements.Get))
		expense.POST("", createNumbered(h, h.svc.ExpenseSettlements.Create))
		expense.PUT("/:id", update(h, "id", h.svc.ExpenseSettlements.Update))
		expense.DELETE("/:id", remove(h, "id", h.svc.ExpenseSettlements.Delete))
	}

	sale := r.Group("/saleSettlements")
	{
		sale.GET("", search(h, h.svc.SaleSettlements.List))
		sale.GET("/:id", getByID(h, "id", h.svc.SaleSettlements.Get))
		sale.POST("", createNumbered(h, h.svc.SaleSettlements.Create))
		sale.PUT("/:id", update(h, "id", h.svc.SaleSettlements.Update))
		sale.DELETE("/:id", remove(h, "id", h.svc.SaleSettlements.Delete))

		sale.POST("/:id/details", update(h, "id", h.svc.SaleSettlements.AddDetails))
		sale.GET("/:id/details", getByID(h, "id", h.svc.SaleSettlements.Details))
		sale.DELETE("/:id/details", remove(h, "id", h.svc.SaleSettlements.DeleteDetails))
	}
}

func (h *Handler) exportExpenseSettlements(c *gin.Context) {
	var q dto.ExpenseSettlementQuery
	if !bindQuery(c, &q) {
		return
	}

	buf, err := h.svc.ExpenseSettlements.Export(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	name := fmt.Sprintf("expense-settlements-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

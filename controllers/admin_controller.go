package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// AdminController is a read-only reporting surface; nothing here
// mutates order state.
type AdminController struct{ Svc *services.OrderService }

func NewAdminController(s *services.OrderService) *AdminController { return &AdminController{Svc: s} }

// GET /admin/orders
func (h *AdminController) Orders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := h.Svc.ListAll(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

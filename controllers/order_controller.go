package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer-facing order surface.
type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /order — place an order for one restaurant from the cart
func (h *OrderController) Place(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceOrder(actor.ActorID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.Svc.ListForCustomer(actor.ActorID, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /order/:id
func (h *OrderController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForCustomer(actor.ActorID, uint(orderID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

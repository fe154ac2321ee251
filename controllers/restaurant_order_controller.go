// controllers/restaurant_order_controller.go
package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantOrderController struct{ Svc *services.OrderService }

func NewRestaurantOrderController(s *services.OrderService) *RestaurantOrderController {
	return &RestaurantOrderController{Svc: s}
}

type orderActionReq struct {
	Notes string `json:"notes"`
}

// GET /restaurant/orders?stage=pending|active|complete
func (h *RestaurantOrderController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)

	stage := c.Query("stage")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForRestaurant(actor.ActorID, stage, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurant/order/:id
func (h *RestaurantOrderController) Detail(c *gin.Context) {
	actor := utils.CurrentActor(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForRestaurant(actor.ActorID, uint(orderID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /restaurant/order/:id/accept
func (h *RestaurantOrderController) Accept(c *gin.Context) {
	h.action(c, h.Svc.Accept, "Order Accepted")
}

// POST /restaurant/order/:id/reject
func (h *RestaurantOrderController) Reject(c *gin.Context) {
	h.action(c, h.Svc.Reject, "Order Cancelled")
}

// POST /restaurant/order/:id/ready
func (h *RestaurantOrderController) Ready(c *gin.Context) {
	h.action(c, h.Svc.MarkReady, "Order Ready for Pickup")
}

func (h *RestaurantOrderController) action(c *gin.Context, fn func(restaurantID, orderID uint, notes string) error, okMsg string) {
	actor := utils.CurrentActor(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req orderActionReq
	_ = c.ShouldBindJSON(&req) // body is optional

	if err := fn(actor.ActorID, uint(orderID), req.Notes); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": okMsg})
}

// controllers/driver_order_controller.go
package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DriverOrderController struct{ Svc *services.DriverService }

func NewDriverOrderController(s *services.DriverService) *DriverOrderController {
	return &DriverOrderController{Svc: s}
}

// GET /driver/orders/claimable
func (h *DriverOrderController) Claimable(c *gin.Context) {
	orders, err := h.Svc.ListClaimable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /driver/orders — this driver's deliveries, newest first
func (h *DriverOrderController) Mine(c *gin.Context) {
	actor := utils.CurrentActor(c)
	orders, err := h.Svc.ListMine(actor.ActorID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// POST /driver/order/:id/claim
func (h *DriverOrderController) Claim(c *gin.Context) {
	h.action(c, h.Svc.Claim, "Order Claimed")
}

// POST /driver/order/:id/pickup
func (h *DriverOrderController) Pickup(c *gin.Context) {
	h.action(c, h.Svc.Pickup, "Order Picked Up")
}

// POST /driver/order/:id/complete
func (h *DriverOrderController) Complete(c *gin.Context) {
	h.action(c, h.Svc.Complete, "Delivery Completed")
}

func (h *DriverOrderController) action(c *gin.Context, fn func(driverID, orderID uint) error, okMsg string) {
	actor := utils.CurrentActor(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := fn(actor.ActorID, uint(orderID)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": okMsg})
}

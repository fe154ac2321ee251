package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	actor := utils.CurrentActor(c)

	lines, subtotal, err := h.Svc.ListLines(actor.ActorID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// PUT /cart — absolute quantity set; 0 removes the line
func (h *CartController) Upsert(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var req services.UpsertLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := h.Svc.UpsertLine(actor.ActorID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": msg})
}

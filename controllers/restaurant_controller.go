package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves the public read-only catalog browse.
type RestaurantController struct{ Repo *repository.MenuRepository }

func NewRestaurantController(r *repository.MenuRepository) *RestaurantController {
	return &RestaurantController{Repo: r}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Repo.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": restaurants})
}

// GET /restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rs, err := h.Repo.GetRestaurant(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	menu, err := h.Repo.ListMenuForRestaurant(rs.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rs, "menu": menu})
}

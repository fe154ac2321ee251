package controllers

import (
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"omitempty,oneof=customer restaurant driver"`

	// restaurant only
	RestaurantName string `json:"restaurantName"`
	Address        string `json:"address"`
	Suburb         string `json:"suburb"`
	State          string `json:"state"`
	Postcode       string `json:"postcode"`

	// driver only
	LicenseNumber string `json:"licenseNumber"`
	CarPlate      string `json:"carPlate"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Role == "" {
		req.Role = "customer"
	}
	if req.Role == "restaurant" && req.RestaurantName == "" {
		resp.BadRequest(c, "restaurantName is required for restaurant accounts")
		return
	}

	user, err := a.Svc.Register(&services.RegisterIn{
		Email: req.Email, Password: req.Password,
		FirstName: req.FirstName, LastName: req.LastName,
		PhoneNumber: req.PhoneNumber, Role: req.Role,
		RestaurantName: req.RestaurantName,
		Address:        req.Address, Suburb: req.Suburb,
		State: req.State, Postcode: req.Postcode,
		LicenseNumber: req.LicenseNumber, CarPlate: req.CarPlate,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "email": user.Email, "firstName": user.FirstName,
		"lastName": user.LastName, "role": user.Role,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "firstName": user.FirstName,
			"lastName": user.LastName, "role": user.Role,
		},
	})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	actor := utils.CurrentActor(c)
	user, err := a.Svc.GetProfile(actor.UserID)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

package controllers

import (
	"errors"
	"net/http"

	"menuqr/pkg/resp"
	"menuqr/services"
	"menuqr/utils"

	"menuqr/entity"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	RestaurantName string `json:"restaurantName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleStartRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type GoogleCallbackRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
	Handoff *services.GoogleHandoff
}

func NewAuthController(s *services.AuthService, h *services.GoogleHandoff) *AuthController {
	return &AuthController{Service: s, Handoff: h}
}

func vendorJSON(v *entity.Vendor) gin.H {
	return gin.H{
		"id":             v.ID,
		"email":          v.Email,
		"restaurantName": v.RestaurantName,
		"photoURL":       v.PhotoURL,
		"provider":       v.Provider,
		"createdAt":      v.CreatedAt,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, vendor, err := a.Service.Register(req.Email, req.Password, req.RestaurantName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "vendor": vendorJSON(vendor)})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, vendor, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTooManyAttempts):
			resp.TooManyRequests(c, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "vendor": vendorJSON(vendor)})
}

// POST /auth/google/start
// Simulated external sign-in: takes the profile the "Google page" collected
// and hands back a one-shot token for the callback.
func (a *AuthController) GoogleStart(c *gin.Context) {
	var req GoogleStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token := a.Handoff.Issue(services.HandoffResult{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	resp.OK(c, gin.H{"handoffToken": token})
}

// POST /auth/google/callback
// Consumes the hand-off token exactly once and signs the vendor in.
func (a *AuthController) GoogleCallback(c *gin.Context) {
	var req GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, ok := a.Handoff.Consume(req.Token)
	if !ok {
		resp.Unauthorized(c, "invalid or expired handoff token")
		return
	}

	token, vendor, err := a.Service.CompleteGoogle(result)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "vendor": vendorJSON(vendor)})
}

// GET /auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	vendor, err := a.Service.Profile(utils.CurrentVendorID(c))
	if err != nil {
		resp.BadRequest(c, "vendor not found")
		return
	}
	resp.OK(c, vendorJSON(vendor))
}

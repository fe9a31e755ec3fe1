package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UoaWDCC/uabc-web-sub002/internal/auth"
	"github.com/UoaWDCC/uabc-web-sub002/internal/model"
	"github.com/UoaWDCC/uabc-web-sub002/internal/service"
)

// AuthHandler handles registration, login and the current-user endpoint.
type AuthHandler struct {
	svc service.UserServicer
	log *zap.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(svc service.UserServicer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Register godoc
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, model.AuthResponse{Token: token, User: model.NewUserResponse(user)})
}

// Login godoc
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: model.NewUserResponse(user)})
}

// Me godoc
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), auth.UserIDFrom(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserResponse(user))
}

// adminUpdateUserRequest is the request body for PATCH /users/:id.
type adminUpdateUserRequest struct {
	Role              *model.Role `json:"role" binding:"omitempty,oneof=casual member admin"`
	RemainingSessions *int        `json:"remaining_sessions" binding:"omitempty,min=0"`
}

// UpdateUser godoc
// PATCH /users/:id (admin)
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.svc.AdminUpdate(c.Request.Context(), c.Param("id"), service.AdminUpdateInput{
		Role:              req.Role,
		RemainingSessions: req.RemainingSessions,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserResponse(user))
}

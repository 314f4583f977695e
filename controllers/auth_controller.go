package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/IlyaM70/RedMango-API/pkg/resp"
	"github.com/IlyaM70/RedMango-API/services"
)

type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := a.Svc.Login(req.UserName, req.Password)
	if err != nil {
		// Same shape for unknown user and wrong password.
		resp.BadRequest(c, services.ErrInvalidCredentials.Error())
		return
	}
	resp.OK(c, result)
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := a.Svc.Register(req.UserName, req.Password, req.Name, req.Role); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.BadRequest(c, services.ErrRegistrationFailed.Error())
		return
	}
	resp.OK(c, nil)
}

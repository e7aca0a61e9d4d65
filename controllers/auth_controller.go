package controllers

import (
	"net/http"
	"time"

	"medmatch/pkg/resp"
	"medmatch/services"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth      *services.AuthService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(auth *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Auth: auth, JWTSecret: secret, JWTTTL: ttl}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Username, req.Email, req.Password, req.ConfirmPassword, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"role": user.Role, "isVerified": user.IsVerified,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	token, err := utils.GenerateToken(user, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "email": user.Email,
			"role": user.Role, "isVerified": user.IsVerified,
		},
	})
}

// POST /auth/logout (auth)
func (a *AuthController) Logout(c *gin.Context) {
	token, _ := c.Get("token")
	tokenStr, _ := token.(string)

	expiresAt := time.Now().Add(a.JWTTTL)
	if v, ok := c.Get("tokenExpiresAt"); ok {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	if err := a.Auth.Logout(c.Request.Context(), tokenStr, expiresAt); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/me (auth)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.Me(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "username": user.Username, "email": user.Email,
		"role": user.Role, "isVerified": user.IsVerified,
	})
}

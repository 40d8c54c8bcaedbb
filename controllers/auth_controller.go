package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/configs"
	"github.com/A3K3SH/Catering/middlewares"
	"github.com/A3K3SH/Catering/pkg/resp"
	"github.com/A3K3SH/Catering/repository"
	"github.com/A3K3SH/Catering/services"
	"github.com/A3K3SH/Catering/utils"
)

type AuthController struct {
	svc *services.AuthService
	cfg *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	svc := services.NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		cfg.SessionTTL,
	)
	return &AuthController{svc: svc, cfg: cfg}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Unauthorized(c, "Invalid username or password")
		return
	}

	user, session, err := ac.svc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "Invalid username or password")
			return
		}
		resp.ServerError(c, err)
		return
	}

	ac.setSessionCookie(c, session.Token, int(ac.cfg.SessionTTL.Seconds()))
	resp.OK(c, gin.H{"user": user})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if token := utils.SessionToken(c); token != "" {
		// best-effort revocation; logout is idempotent for the caller
		_ = ac.svc.Logout(token)
	}
	ac.setSessionCookie(c, "", -1)
	resp.OK(c, gin.H{"success": true})
}

// GET /api/auth/status
func (ac *AuthController) Status(c *gin.Context) {
	user := utils.CurrentUser(c)
	if user == nil {
		resp.Unauthorized(c, "Not authenticated")
		return
	}
	resp.OK(c, gin.H{"user": user})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middlewares.SessionCookie, token, maxAge, "/", "", ac.cfg.Production(), true)
}

package handler

import (
	"errors"
	"net/http"

	"Volunteer_Hub/internal/middleware"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 登录接口，错误码区分账号不存在与密码错误
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	pair, user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, pkg.ErrUsernameNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"errorType": "USERNAME_NOT_FOUND",
			"message":   "account does not exist",
		})
		return
	}
	if errors.Is(err, pkg.ErrWrongPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"errorType": "WRONG_PASSWORD",
			"message":   "incorrect password",
		})
		return
	}
	if err != nil {
		respondErr(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
		},
	})
}

// Register 管理员开通账号
func (h *AuthHandler) Register(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	user, pair, err := h.svc.Register(c.Request.Context(), service.IdentityOf(actor), req)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID.Hex(),
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"fullName": user.FullName,
		"token":    pair.AccessToken,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Users 成员选择器用的用户列表，密码字段不序列化
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.svc.Users(c.Request.Context())
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	if err := h.svc.Logout(c.Request.Context(), user.ID.Hex()); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// TokenRefresh 利用 refresh 换发新 access
func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": pair.AccessToken, "refreshToken": pair.RefreshToken})
}

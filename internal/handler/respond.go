package handler

import (
	"errors"
	"net/http"

	"Volunteer_Hub/internal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondErr 错误分级统一映射 HTTP 状态码，handler 不各写各的
func respondErr(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, pkg.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, pkg.ErrUnauthenticated),
		errors.Is(err, pkg.ErrTokenExpired),
		errors.Is(err, pkg.ErrTokenInvalid),
		errors.Is(err, pkg.ErrRefreshExpired),
		errors.Is(err, pkg.ErrRefreshInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, pkg.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "not authorized for this action"})
	case errors.Is(err, pkg.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, pkg.ErrAlreadyRegistered), errors.Is(err, pkg.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		if log != nil {
			log.Error("internal error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

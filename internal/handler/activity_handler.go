package handler

import (
	"net/http"

	"Volunteer_Hub/internal/middleware"
	"Volunteer_Hub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ActivityHandler struct {
	svc *service.ActivityService
	log *zap.Logger
}

func NewActivityHandler(svc *service.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: log}
}

// ListByCampaign 战役下的活动列表，带报名者信息
func (h *ActivityHandler) ListByCampaign(c *gin.Context) {
	list, err := h.svc.ListByCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ActivityHandler) Get(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req service.CreateActivityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	activity, err := h.svc.Create(c.Request.Context(), service.IdentityOf(user), c.Param("id"), req)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var patch service.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	activity, err := h.svc.Update(c.Request.Context(), service.IdentityOf(user), c.Param("id"), patch)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), service.IdentityOf(user), c.Param("id")); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "activity removed"})
}

// Register 报名接口，重复报名返回 409
func (h *ActivityHandler) Register(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	if err := h.svc.Register(c.Request.Context(), service.IdentityOf(user), c.Param("id")); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "registered for activity successfully"})
}

func (h *ActivityHandler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

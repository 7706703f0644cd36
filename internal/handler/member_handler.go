package handler

import (
	"net/http"

	"Volunteer_Hub/internal/middleware"
	"Volunteer_Hub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MemberHandler struct {
	svc *service.MemberService
	log *zap.Logger
}

func NewMemberHandler(svc *service.MemberService, log *zap.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: log}
}

func (h *MemberHandler) ListByCampaign(c *gin.Context) {
	list, err := h.svc.ListByCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Add 重复加入同一战役返回 409
func (h *MemberHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req service.AddMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	member, err := h.svc.Add(c.Request.Context(), service.IdentityOf(user), c.Param("id"), req)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var patch service.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	member, err := h.svc.Update(c.Request.Context(), service.IdentityOf(user), c.Param("memberId"), patch)
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), service.IdentityOf(user), c.Param("memberId")); err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "member removed from campaign"})
}

func (h *MemberHandler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		respondErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

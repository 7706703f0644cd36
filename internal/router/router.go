package router

import (
	"Volunteer_Hub/internal/handler"
	"Volunteer_Hub/internal/middleware"
	"Volunteer_Hub/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Campaign *handler.CampaignHandler
	Activity *handler.ActivityHandler
	Task     *handler.TaskHandler
	Member   *handler.MemberHandler
}

func InitRouter(h Handlers, users repository.UserRepository, sessions repository.SessionStore, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	authed := middleware.Auth(users, sessions)

	// 用户相关接口
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/register", authed, h.Auth.Register)
		authGroup.GET("/profile", authed, h.Auth.Profile)
		authGroup.GET("/users", authed, h.Auth.Users)
		authGroup.POST("/logout", authed, h.Auth.Logout)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", h.Auth.TokenRefresh)
	}

	// 战役相关接口，列表和详情开放给未登录用户
	campaignGroup := r.Group("/api/campaigns")
	{
		campaignGroup.GET("", h.Campaign.List)
		campaignGroup.GET("/count", h.Campaign.Count)
		campaignGroup.GET("/:id", h.Campaign.Get)
		campaignGroup.POST("", authed, h.Campaign.Create)
		campaignGroup.PUT("/:id", authed, h.Campaign.Update)
		campaignGroup.DELETE("/:id", authed, h.Campaign.Delete)

		// 战役下的嵌套资源
		campaignGroup.GET("/:id/activities", authed, h.Activity.ListByCampaign)
		campaignGroup.POST("/:id/activities", authed, h.Activity.Create)
		campaignGroup.GET("/:id/tasks", authed, h.Task.ListByCampaign)
		campaignGroup.POST("/:id/tasks", authed, h.Task.Create)
		campaignGroup.GET("/:id/members", authed, h.Member.ListByCampaign)
		campaignGroup.POST("/:id/members", authed, h.Member.Add)
	}

	// 活动相关接口
	activityGroup := r.Group("/api/activities")
	activityGroup.Use(authed)
	{
		activityGroup.GET("/count", h.Activity.Count)
		activityGroup.GET("/:id", h.Activity.Get)
		activityGroup.PUT("/:id", h.Activity.Update)
		activityGroup.DELETE("/:id", h.Activity.Delete)
		activityGroup.POST("/:id/register", h.Activity.Register)
	}

	// 任务相关接口
	taskGroup := r.Group("/api/tasks")
	taskGroup.Use(authed)
	{
		taskGroup.GET("/count", h.Task.Count)
		taskGroup.GET("/:id", h.Task.Get)
		taskGroup.PUT("/:id", h.Task.Update)
		taskGroup.DELETE("/:id", h.Task.Delete)
	}

	// 成员相关接口
	memberGroup := r.Group("/api/members")
	memberGroup.Use(authed)
	{
		memberGroup.GET("/count", h.Member.Count)
		memberGroup.PUT("/:memberId", h.Member.Update)
		memberGroup.DELETE("/:memberId", h.Member.Remove)
	}

	return r
}

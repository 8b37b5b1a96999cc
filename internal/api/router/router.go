package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scrap-collection/backend/config"
	"scrap-collection/backend/internal/api/handler"
	"scrap-collection/backend/internal/api/middleware"
	"scrap-collection/backend/internal/model"
	"scrap-collection/backend/pkg/jwt"
	"scrap-collection/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录接口限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 员工（回收员）模块
			employees := authorized.Group("/employees")
			{
				employees.GET("", h.Collector.ListEmployees)
				employees.GET("/:id", h.Collector.GetEmployee)
				employees.POST("", middleware.RoleAuth(model.RoleAdmin), h.Collector.CreateEmployee)
				employees.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Collector.UpdateEmployee)
				employees.PATCH("/:id/status", middleware.RoleAuth(model.RoleAdmin), h.Collector.UpdateEmployeeStatus)
				employees.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Collector.DeleteEmployee)
			}

			// 班组模块
			crews := authorized.Group("/crews")
			{
				crews.GET("", h.Crew.ListCrews)
				crews.GET("/:id", h.Crew.GetCrew)
				crews.POST("", middleware.RoleAuth(model.RoleAdmin), h.Crew.CreateCrew)
				crews.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Crew.UpdateCrew)
				crews.PATCH("/:id/status", middleware.RoleAuth(model.RoleAdmin), h.Crew.UpdateCrewStatus)
				crews.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Crew.DeleteCrew)
			}

			// 车辆模块
			vehicles := authorized.Group("/vehicle-names")
			{
				vehicles.GET("", h.VehicleName.ListVehicleNames)
				vehicles.GET("/:id", h.VehicleName.GetVehicleName)
				vehicles.POST("", middleware.RoleAuth(model.RoleAdmin), h.VehicleName.CreateVehicleName)
				vehicles.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.VehicleName.UpdateVehicleName)
				vehicles.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.VehicleName.DeleteVehicleName)
			}

			// 废品站模块
			yards := authorized.Group("/scrap-yards")
			{
				yards.GET("", h.ScrapYard.ListScrapYards)
				yards.GET("/:id", h.ScrapYard.GetScrapYard)
				yards.POST("", middleware.RoleAuth(model.RoleAdmin), h.ScrapYard.CreateScrapYard)
				yards.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.ScrapYard.UpdateScrapYard)
				yards.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.ScrapYard.DeleteScrapYard)
			}

			// 资源分配模块
			assignments := authorized.Group("/collector-assignments")
			{
				assignments.GET("", h.Assignment.ListAssignments)
				assignments.GET("/:id", h.Assignment.GetAssignment)
				assignments.POST("", middleware.RoleAuth(model.RoleAdmin), h.Assignment.CreateAssignment)
				assignments.POST("/submit", middleware.RoleAuth(model.RoleAdmin), h.Assignment.SubmitAssignment)
				assignments.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Assignment.UpdateAssignment)
				assignments.PATCH("/:id/status", middleware.RoleAuth(model.RoleAdmin), h.Assignment.UpdateAssignmentStatus)
				assignments.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Assignment.DeleteAssignment)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/assignments", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportAssignments)
			}
		}
	}

	return r
}

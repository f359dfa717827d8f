package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"internship-web/backend/config"
	"internship-web/backend/internal/api/handler"
	"internship-web/backend/internal/api/middleware"
	"internship-web/backend/internal/model"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, auth middleware.Authenticator, logger *zap.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidators()

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	api := r.Group("/api")
	{
		// 无需认证
		api.GET("/health", h.Health.Health)
		api.POST("/login", h.Auth.Login)
		api.POST("/register", h.Auth.Register)

		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(auth))
		{
			kaprodi := middleware.RoleAuth(model.RoleKaprodi)
			student := middleware.RoleAuth(model.RoleStudent)

			authorized.GET("/me", h.Auth.Me)
			authorized.GET("/dashboard/stats", h.Dashboard.Stats)

			// 学生管理（仅 kaprodi）
			students := authorized.Group("/students", kaprodi)
			{
				students.GET("", h.Student.List)
				students.POST("", h.Student.Create)
				students.PUT("/:id", h.Student.Update)
				students.DELETE("/:id", h.Student.Delete)
			}

			// 实习项目
			internships := authorized.Group("/internships")
			{
				internships.GET("", h.Internship.List)
				internships.POST("", kaprodi, h.Internship.Create)
				internships.PUT("/:id", kaprodi, h.Internship.Update)
				internships.DELETE("/:id", kaprodi, h.Internship.Delete)
			}

			// 实习申请
			applications := authorized.Group("/applications")
			{
				applications.GET("", h.Application.List)
				applications.POST("", student, h.Application.Create)
				applications.PUT("/:id/status", kaprodi, h.Application.UpdateStatus)
			}

			// 实习报告
			reports := authorized.Group("/reports")
			{
				reports.GET("", h.Report.List)
				reports.POST("", student, h.Report.Create)
				reports.PUT("/:id/status", kaprodi, h.Report.UpdateStatus)
			}

			// 评价
			evaluations := authorized.Group("/evaluations")
			{
				evaluations.GET("", h.Evaluation.List)
				evaluations.POST("", kaprodi, h.Evaluation.Create)
			}

			// 导出
			export := authorized.Group("/export", kaprodi)
			{
				export.GET("/applications", h.Export.ExportApplications)
				export.GET("/evaluations", h.Export.ExportEvaluations)
			}
		}
	}

	return r
}

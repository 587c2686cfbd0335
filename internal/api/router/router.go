package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/config"
	"github.com/jung915st/tc-api-example/internal/api/handler"
	"github.com/jung915st/tc-api-example/internal/api/middleware"
)

// maxBodyBytes 同步与成绩查询请求体都很小，1MB 足够
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		api.GET("/students", h.Student.List)
		api.GET("/classes", h.Class.Overview)
		api.GET("/teachers", h.Teacher.List)

		scores := api.Group("/scores")
		{
			scores.GET("/current-semester", h.Score.CurrentSemester)
			scores.POST("/semester", h.Score.SemesterScores)
		}

		api.POST("/sync-school", h.Sync.SyncSchool)
		api.GET("/sync-school/status", h.Sync.Status)

		export := api.Group("/export")
		{
			export.GET("/scores", h.Export.Scores)
			export.GET("/calendar", h.Export.Calendar)
		}
	}

	return r
}

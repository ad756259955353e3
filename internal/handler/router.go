package handler

import (
	"perpus-go/internal/config"
	"perpus-go/internal/middleware"
	"perpus-go/internal/repository"
	"perpus-go/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter 组装路由引擎：全局中间件、上传目录静态服务和 /api 路由组。
// 访客计数对所有请求生效，限流只挂在 /api 上。
func NewRouter(
	catalogService service.CatalogService,
	logService service.ActivityLogService,
	analyticsService service.AnalyticsService,
	visitorRepo repository.VisitorRepository,
	uploadDir string,
	rateLimit config.RateLimitConfig,
) *gin.Engine {
	r := gin.New()
	// 前端跨域访问 API，放开所有来源；访客计数在 CORS 之前，预检请求也计入
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.VisitorCounter(visitorRepo), cors.Default())

	// 上传文件的静态服务，完整 URL 由服务层按 base_url 拼出
	r.Static("/uploads", uploadDir)

	bookHandler := NewBookHandler(catalogService)
	logHandler := NewLogHandler(logService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)

	api := r.Group("/api")
	api.Use(middleware.RateLimiter(rateLimit.MaxRequests, rateLimit.WindowSeconds))
	{
		api.GET("/books", bookHandler.ListBooks)
		api.POST("/books", bookHandler.CreateBook)
		api.PUT("/books/:id", bookHandler.UpdateBook)
		api.DELETE("/books/:id", bookHandler.DeleteBook)

		api.GET("/genres", bookHandler.GetGenres)
		api.GET("/languages", bookHandler.GetLanguages)

		api.GET("/stats", analyticsHandler.Stats)
		api.GET("/analytics", analyticsHandler.Analytics)

		api.GET("/logs", logHandler.ListLogs)
		api.POST("/logs", logHandler.CreateLog)
		api.DELETE("/logs", logHandler.ClearLogs)
	}

	return r
}

package handler

import (
	"net/http"

	"perpus-go/internal/service"
	"perpus-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 负责处理统计与访客趋势相关的 API 请求。
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler 创建一个新的 AnalyticsHandler 实例。
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Stats 返回站点统计：图书总数、可借数、借出数、访客总数。
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.Stats()
	if err != nil {
		log.Error("Stats: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Analytics 返回最近 30 天的访客记录，按日期升序。
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	rows, err := h.analyticsService.RecentVisitors()
	if err != nil {
		log.Error("Analytics: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

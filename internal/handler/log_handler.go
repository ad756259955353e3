package handler

import (
	"errors"
	"net/http"

	"perpus-go/internal/service"
	"perpus-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// LogHandler 负责处理操作日志相关的 API 请求。
type LogHandler struct {
	logService service.ActivityLogService
}

// NewLogHandler 创建一个新的 LogHandler 实例。
func NewLogHandler(logService service.ActivityLogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// appendLogRequest 是写日志接口的请求体。
type appendLogRequest struct {
	Action  string  `json:"action"`
	Details *string `json:"details"`
}

// ListLogs 返回全部操作日志，最新的在前。
func (h *LogHandler) ListLogs(c *gin.Context) {
	entries, err := h.logService.List()
	if err != nil {
		log.Error("ListLogs: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateLog 追加一条操作日志。
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req appendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required."})
		return
	}

	entry, err := h.logService.Append(req.Action, req.Details)
	if err != nil {
		if errors.Is(err, service.ErrMissingAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required."})
			return
		}
		log.Error("CreateLog: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create log"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ClearLogs 清空全部操作日志。
func (h *LogHandler) ClearLogs(c *gin.Context) {
	if err := h.logService.Clear(); err != nil {
		log.Error("ClearLogs: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete logs"})
		return
	}
	c.Status(http.StatusNoContent)
}

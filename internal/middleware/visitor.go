package middleware

import (
	"time"

	"perpus-go/internal/repository"
	"perpus-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// VisitorCounter 在每个请求上累加当天的访客计数。
// 跨日首请求并发时，唯一索引会让后插入的一方失败，这里只记日志不中断请求，
// 该次计数丢失。计数是近似值，不是精确保证。
func VisitorCounter(visitorRepo repository.VisitorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		if err := visitorRepo.IncrementOrCreate(today); err != nil {
			log.Warnf("访客计数失败: %v", err)
		}
		c.Next()
	}
}

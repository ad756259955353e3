package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter 持有单个 IP 的限流器和最近一次请求时间，
// lastSeen 用于回收长时间不活跃的条目，避免 map 无限增长。
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 基于令牌桶的按 IP 限流中间件。
// 桶容量为 maxRequests，按 maxRequests/windowSeconds 的速率补充，
// 一个窗口内超过 maxRequests 次的请求返回 429。
func RateLimiter(maxRequests, windowSeconds int) gin.HandlerFunc {
	if maxRequests <= 0 {
		maxRequests = 100
	}
	if windowSeconds <= 0 {
		windowSeconds = 900
	}
	refill := rate.Limit(float64(maxRequests) / float64(windowSeconds))

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	// 每分钟回收一次超过 3 分钟没有请求的 IP 条目
	go func() {
		for {
			time.Sleep(time.Minute)
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, found := clients[ip]
		if !found {
			cl = &clientLimiter{limiter: rate.NewLimiter(refill, maxRequests)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allowed := cl.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.String(http.StatusTooManyRequests, "Too many requests, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}

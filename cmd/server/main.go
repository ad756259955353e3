// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perpus-go/internal/config"
	"perpus-go/internal/handler"
	"perpus-go/internal/repository"
	"perpus-go/internal/service"
	"perpus-go/pkg/database"
	"perpus-go/pkg/filestore"
	"perpus-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库和上传目录
	database.InitMySQL(cfg.Database.MySQL.DSN)
	files, err := filestore.New(cfg.Upload.Dir)
	if err != nil {
		log.Fatal("初始化上传目录失败", err)
	}

	// 4. 初始化 Repository
	bookRepo := repository.NewBookRepository(database.DB)
	logRepo := repository.NewActivityLogRepository(database.DB)
	visitorRepo := repository.NewVisitorRepository(database.DB)

	// 5. 初始化 Service (依赖注入)
	catalogService := service.NewCatalogService(bookRepo, files, cfg.Server.BaseURL)
	logService := service.NewActivityLogService(logRepo)
	analyticsService := service.NewAnalyticsService(bookRepo, visitorRepo)

	// 6. 设置 Gin 模式并组装路由
	gin.SetMode(cfg.Server.Mode)
	r := handler.NewRouter(catalogService, logService, analyticsService, visitorRepo, files.Dir(), cfg.RateLimit)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("HTTP 服务器关闭失败", err)
	}
	log.Info("服务已优雅关闭")
}

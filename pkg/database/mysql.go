// Package database 负责数据库连接的初始化。
package database

import (
	"time"

	"perpus-go/internal/model"
	"perpus-go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitMySQL 初始化 MySQL 数据库连接并自动迁移表结构。
func InitMySQL(dsn string) {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", err)
	}

	// 配置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database", err)
	}

	log.Info("MySQL database connected successfully")
}

// Migrate 自动迁移所有业务表。测试环境用 sqlite 复用同一份迁移。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Book{}, &model.ActivityLog{}, &model.DailyVisitor{})
}

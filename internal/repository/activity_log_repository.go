package repository

import (
	"perpus-go/internal/model"

	"gorm.io/gorm"
)

// ActivityLogRepository 接口定义了操作日志的持久化操作。
// 日志是只追加的，除了整体清空没有其他删除入口。
type ActivityLogRepository interface {
	Create(entry *model.ActivityLog) error
	FindAll() ([]model.ActivityLog, error)
	DeleteAll() error
}

// activityLogRepository 是 ActivityLogRepository 接口的 GORM 实现。
type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository 创建一个新的 ActivityLogRepository 实例。
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create 追加一条操作日志。
func (r *activityLogRepository) Create(entry *model.ActivityLog) error {
	return r.db.Create(entry).Error
}

// FindAll 返回全部日志，按时间倒序（最新的在前）。
func (r *activityLogRepository) FindAll() ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.db.Order("created_at desc").Find(&entries).Error
	return entries, err
}

// DeleteAll 无条件清空日志表。
func (r *activityLogRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ActivityLog{}).Error
}

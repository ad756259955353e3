package repository

import (
	"time"

	"perpus-go/internal/model"

	"gorm.io/gorm"
)

// VisitorRepository 接口定义了每日访客计数的持久化操作。
type VisitorRepository interface {
	IncrementOrCreate(date time.Time) error
	FindRecent(limit int) ([]model.DailyVisitor, error)
	SumCounts() (int64, error)
}

// visitorRepository 是 VisitorRepository 接口的 GORM 实现。
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository 创建一个新的 VisitorRepository 实例。
func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db: db}
}

// IncrementOrCreate 把指定日期的计数加一；当天还没有记录时插入一条 count=1 的新行。
// 两个"当天首个请求"并发时，后插入的一方会撞上 date 的唯一索引并返回错误，
// 由调用方记录日志后忽略，这次计数丢失（见 DailyVisitor 的唯一索引约束）。
func (r *visitorRepository) IncrementOrCreate(date time.Time) error {
	tx := r.db.Model(&model.DailyVisitor{}).
		Where("date = ?", date).
		UpdateColumn("count", gorm.Expr("count + ?", 1))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 0 {
		return nil
	}
	return r.db.Create(&model.DailyVisitor{Date: date, Count: 1}).Error
}

// FindRecent 返回最近 limit 天的访客记录，按日期升序。
func (r *visitorRepository) FindRecent(limit int) ([]model.DailyVisitor, error) {
	var rows []model.DailyVisitor
	if err := r.db.Order("date desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	// 查询按日期倒序取最近的 limit 行，这里翻转成升序返回
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// SumCounts 返回所有访客计数之和，表为空时返回 0。
func (r *visitorRepository) SumCounts() (int64, error) {
	var total int64
	err := r.db.Model(&model.DailyVisitor{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&total).Error
	return total, err
}

package model

import "time"

// DailyVisitor 定义了 daily_visitor 表的 ORM 模型。
// Date 按自然日截断到零点，唯一索引保证每天至多一行。
type DailyVisitor struct {
	ID    uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date  time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Count int64     `gorm:"not null;default:0" json:"count"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (DailyVisitor) TableName() string {
	return "daily_visitor"
}

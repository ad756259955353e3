package model

import "time"

// ActivityLog 定义了 activity_log 表的 ORM 模型。
// 日志只追加和整体清空，没有单条更新或删除。
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Details   *string   `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (ActivityLog) TableName() string {
	return "activity_log"
}

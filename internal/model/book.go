// Package model 定义了与数据库表对应的 Go 结构体。
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 图书状态枚举值。status 字段只允许这两个取值。
const (
	StatusAvailable = "AVAILABLE"
	StatusBorrowed  = "BORROWED"
)

// ValidStatus 判断给定的字符串是否是合法的图书状态。
func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusBorrowed
}

// Book 定义了 book 表的 ORM 模型。
// PdfPath 和 CoverPath 存储相对路径（uploads/xxx），对外返回时由服务层拼成完整 URL。
type Book struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Author      string    `gorm:"type:varchar(255);not null" json:"author"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Genre       *string   `gorm:"type:varchar(100)" json:"genre"`
	Language    *string   `gorm:"type:varchar(100)" json:"language"`
	Status      string    `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	PdfPath     *string   `gorm:"type:varchar(255)" json:"pdfPath"`
	CoverPath   *string   `gorm:"type:varchar(255)" json:"coverPath"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Book) TableName() string {
	return "book"
}

// BeforeCreate 在入库前生成 UUID 主键。
func (b *Book) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

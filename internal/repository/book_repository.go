// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"perpus-go/internal/model"

	"gorm.io/gorm"
)

// sortColumns 是列表接口允许排序的字段白名单，键为对外的字段名，值为数据库列名。
// 排序字段来自查询参数，不在白名单内的一律拒绝，避免拼进 ORDER BY。
var sortColumns = map[string]string{
	"title":     "title",
	"author":    "author",
	"genre":     "genre",
	"language":  "language",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// SortColumn 把对外的排序字段名映射为数据库列名。
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// BookQuery 封装了图书列表接口的过滤、排序和截断条件。
// SortField 必须是已通过 SortColumn 校验的数据库列名；为空时按 created_at 倒序。
type BookQuery struct {
	Search    string
	Genre     string
	Status    string
	SortField string
	Desc      bool
	Limit     int
}

// BookRepository 接口定义了图书相关的数据持久化操作。
type BookRepository interface {
	Find(q BookQuery) ([]model.Book, error)
	FindByID(id string) (*model.Book, error)
	Create(book *model.Book) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	DistinctGenres() ([]string, error)
	DistinctLanguages() ([]string, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// bookRepository 是 BookRepository 接口的 GORM 实现。
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建一个新的 BookRepository 实例。
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Find 按查询条件检索图书列表。
// search 对标题、作者、简介、分类做子串匹配，条件之间取 OR。
func (r *bookRepository) Find(q BookQuery) ([]model.Book, error) {
	tx := r.db.Model(&model.Book{})

	if q.Genre != "" {
		tx = tx.Where("genre = ?", q.Genre)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where(
			r.db.Where("title LIKE ?", like).
				Or("author LIKE ?", like).
				Or("description LIKE ?", like).
				Or("genre LIKE ?", like),
		)
	}

	if q.SortField != "" {
		order := q.SortField
		if q.Desc {
			order += " desc"
		} else {
			order += " asc"
		}
		tx = tx.Order(order)
	} else {
		tx = tx.Order("created_at desc")
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var books []model.Book
	err := tx.Find(&books).Error
	return books, err
}

// FindByID 根据主键检索单本图书。
func (r *bookRepository) FindByID(id string) (*model.Book, error) {
	var book model.Book
	if err := r.db.Where("id = ?", id).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// Create 在数据库中创建一条图书记录。
func (r *bookRepository) Create(book *model.Book) error {
	return r.db.Create(book).Error
}

// Update 按列更新指定图书，只写入 fields 中出现的列。
func (r *bookRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&model.Book{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除指定图书记录。
func (r *bookRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Book{}).Error
}

// DistinctGenres 返回所有非空的分类值（去重）。
func (r *bookRepository) DistinctGenres() ([]string, error) {
	var genres []string
	err := r.db.Model(&model.Book{}).
		Where("genre IS NOT NULL").
		Distinct().
		Pluck("genre", &genres).Error
	return genres, err
}

// DistinctLanguages 返回所有非空的语言值（去重）。
func (r *bookRepository) DistinctLanguages() ([]string, error) {
	var languages []string
	err := r.db.Model(&model.Book{}).
		Where("language IS NOT NULL").
		Distinct().
		Pluck("language", &languages).Error
	return languages, err
}

// Count 返回图书总数。
func (r *bookRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Book{}).Count(&n).Error
	return n, err
}

// CountByStatus 返回指定状态的图书数量。
func (r *bookRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&model.Book{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

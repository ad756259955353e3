// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"perpus-go/internal/service"
	"perpus-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// BookHandler 负责处理所有与图书目录相关的 API 请求。
type BookHandler struct {
	catalogService service.CatalogService
}

// NewBookHandler 创建一个新的 BookHandler 实例。
func NewBookHandler(catalogService service.CatalogService) *BookHandler {
	return &BookHandler{catalogService: catalogService}
}

// ListBooks 处理图书列表请求，支持搜索、过滤、排序和截断。
func (h *BookHandler) ListBooks(c *gin.Context) {
	query := service.ListBooksQuery{
		Search: c.Query("search"),
		Genre:  c.Query("genre"),
		Status: c.Query("status"),
		Sort:   c.Query("sort"),
		Order:  c.DefaultQuery("order", "asc"),
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			query.Limit = n
		}
	}

	books, err := h.catalogService.ListBooks(query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort field."})
			return
		}
		log.Error("ListBooks: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook 处理新增图书请求（multipart 表单，PDF 必传）。
func (h *BookHandler) CreateBook(c *gin.Context) {
	input := service.CreateBookInput{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		Description: c.PostForm("description"),
		Genre:       c.PostForm("genre"),
		Status:      c.PostForm("status"),
	}
	if f, err := c.FormFile("pdf"); err == nil {
		input.Pdf = f
	}
	if f, err := c.FormFile("coverImage"); err == nil {
		input.Cover = f
	}

	book, err := h.catalogService.CreateBook(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title, author, description, genre, and a PDF file are required."})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status provided."})
		default:
			log.Error("CreateBook: failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		}
		return
	}
	c.JSON(http.StatusCreated, book)
}

// UpdateBook 处理更新图书请求，所有字段可选，新文件会替换并删除旧文件。
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id := c.Param("id")

	var input service.UpdateBookInput
	// 只有表单里出现的字段才会写库，区分"没传"和"传了空串"
	if v, ok := c.GetPostForm("title"); ok {
		input.Title = &v
	}
	if v, ok := c.GetPostForm("author"); ok {
		input.Author = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("genre"); ok {
		input.Genre = &v
	}
	if v, ok := c.GetPostForm("status"); ok {
		input.Status = &v
	}
	if f, err := c.FormFile("pdf"); err == nil {
		input.Pdf = f
	}
	if f, err := c.FormFile("coverImage"); err == nil {
		input.Cover = f
	}

	book, err := h.catalogService.UpdateBook(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status provided."})
		default:
			log.Error("UpdateBook: failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		}
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook 处理删除图书请求，记录和关联文件一并清理。
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalogService.DeleteBook(id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		log.Error("DeleteBook: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetGenres 返回所有出现过的分类（扁平数组）。
func (h *BookHandler) GetGenres(c *gin.Context) {
	genres, err := h.catalogService.Genres()
	if err != nil {
		log.Error("GetGenres: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch genres"})
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GetLanguages 返回所有出现过的语言（扁平数组）。
func (h *BookHandler) GetLanguages(c *gin.Context) {
	languages, err := h.catalogService.Languages()
	if err != nil {
		log.Error("GetLanguages: failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch languages"})
		return
	}
	c.JSON(http.StatusOK, languages)
}

// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"mime/multipart"
	"path"

	"perpus-go/internal/model"
	"perpus-go/internal/repository"
	"perpus-go/pkg/filestore"
	"perpus-go/pkg/log"

	"gorm.io/gorm"
)

// 目录服务返回的业务错误，由 handler 层映射为对应的 HTTP 状态码。
var (
	ErrBookNotFound  = errors.New("book not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidSort   = errors.New("invalid sort field")
)

// BookDTO 是返回给前端的图书对象。
// 嵌入 model.Book 并覆盖两个路径字段，把库里的相对路径替换成完整 URL。
type BookDTO struct {
	model.Book
	PdfPath   *string `json:"pdfPath"`
	CoverPath *string `json:"coverPath"`
}

// ListBooksQuery 是列表接口的原始查询参数。
type ListBooksQuery struct {
	Search string
	Genre  string
	Status string
	Sort   string
	Order  string
	Limit  int
}

// CreateBookInput 是新增图书的输入。PDF 为必传，封面可选。
type CreateBookInput struct {
	Title       string
	Author      string
	Description string
	Genre       string
	Status      string
	Pdf         *multipart.FileHeader
	Cover       *multipart.FileHeader
}

// UpdateBookInput 是更新图书的输入，所有字段均可选。
// 指针为 nil 表示请求里没有携带该字段，对应的列保持不变。
type UpdateBookInput struct {
	Title       *string
	Author      *string
	Description *string
	Genre       *string
	Status      *string
	Pdf         *multipart.FileHeader
	Cover       *multipart.FileHeader
}

// CatalogService 接口定义了图书目录相关的业务操作。
type CatalogService interface {
	ListBooks(q ListBooksQuery) ([]BookDTO, error)
	CreateBook(in CreateBookInput) (*BookDTO, error)
	UpdateBook(id string, in UpdateBookInput) (*BookDTO, error)
	DeleteBook(id string) error
	Genres() ([]string, error)
	Languages() ([]string, error)
}

type catalogService struct {
	bookRepo repository.BookRepository
	files    *filestore.Store
	baseURL  string
}

// NewCatalogService 创建一个新的 CatalogService 实例。
// baseURL 是对外可达的服务地址，用于把相对文件路径拼成完整 URL。
func NewCatalogService(bookRepo repository.BookRepository, files *filestore.Store, baseURL string) CatalogService {
	return &catalogService{
		bookRepo: bookRepo,
		files:    files,
		baseURL:  baseURL,
	}
}

// fullURL 把存储的相对路径改写为完整的下载地址，nil 保持 nil。
func (s *catalogService) fullURL(relPath *string) *string {
	if relPath == nil || *relPath == "" {
		return nil
	}
	u := s.baseURL + "/uploads/" + path.Base(*relPath)
	return &u
}

// toDTO 把 ORM 模型转换为带完整 URL 的响应对象。
func (s *catalogService) toDTO(book model.Book) BookDTO {
	return BookDTO{
		Book:      book,
		PdfPath:   s.fullURL(book.PdfPath),
		CoverPath: s.fullURL(book.CoverPath),
	}
}

// ListBooks 按条件检索图书列表。
// sort 必须在白名单内（非法值返回 ErrInvalidSort），缺省按创建时间倒序。
func (s *catalogService) ListBooks(q ListBooksQuery) ([]BookDTO, error) {
	query := repository.BookQuery{
		Search: q.Search,
		Genre:  q.Genre,
		Status: q.Status,
		Limit:  q.Limit,
	}
	if q.Sort != "" {
		col, ok := repository.SortColumn(q.Sort)
		if !ok {
			return nil, ErrInvalidSort
		}
		query.SortField = col
		query.Desc = q.Order == "desc"
	}

	books, err := s.bookRepo.Find(query)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, s.toDTO(b))
	}
	return dtos, nil
}

// CreateBook 新增一本图书。
// 校验不通过时不落盘也不写库；文件先写入磁盘，再把相对路径存到新记录上。
func (s *catalogService) CreateBook(in CreateBookInput) (*BookDTO, error) {
	if in.Title == "" || in.Author == "" || in.Description == "" || in.Genre == "" || in.Pdf == nil {
		return nil, ErrMissingFields
	}
	if in.Status != "" && !model.ValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}
	status := in.Status
	if status == "" {
		status = model.StatusAvailable
	}

	pdfPath, err := s.files.Save(in.Pdf)
	if err != nil {
		return nil, err
	}
	var coverPath *string
	if in.Cover != nil {
		p, err := s.files.Save(in.Cover)
		if err != nil {
			// PDF 此时已经落盘，留下的孤儿文件只记日志，不做回收
			log.Warnf("保存封面失败，PDF 文件 %s 成为孤儿: %v", pdfPath, err)
			return nil, err
		}
		coverPath = &p
	}

	genre := in.Genre
	book := &model.Book{
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Genre:       &genre,
		Status:      status,
		PdfPath:     &pdfPath,
		CoverPath:   coverPath,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}

	dto := s.toDTO(*book)
	return &dto, nil
}

// UpdateBook 更新一本图书，只写入请求中出现的字段。
// 传了新文件时先存新文件、更新记录，最后尽力删除旧文件；删除失败只记日志。
func (s *catalogService) UpdateBook(id string, in UpdateBookInput) (*BookDTO, error) {
	// 先校验状态再查记录，非法状态的优先级高于未知 id
	if in.Status != nil && !model.ValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Author != nil {
		fields["author"] = *in.Author
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Genre != nil {
		fields["genre"] = *in.Genre
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	if in.Pdf != nil {
		p, err := s.files.Save(in.Pdf)
		if err != nil {
			return nil, err
		}
		fields["pdf_path"] = p
	}
	if in.Cover != nil {
		p, err := s.files.Save(in.Cover)
		if err != nil {
			return nil, err
		}
		fields["cover_path"] = p
	}

	if len(fields) > 0 {
		if err := s.bookRepo.Update(id, fields); err != nil {
			return nil, err
		}
	}

	// 记录已更新，被替换掉的旧文件尽力删除
	if in.Pdf != nil && existing.PdfPath != nil {
		s.removeFile(*existing.PdfPath)
	}
	if in.Cover != nil && existing.CoverPath != nil {
		s.removeFile(*existing.CoverPath)
	}

	updated, err := s.bookRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(*updated)
	return &dto, nil
}

// DeleteBook 删除一本图书及其关联文件。
// 记录删除成功后才清理文件，单个文件删除失败不影响整体结果。
func (s *catalogService) DeleteBook(id string) error {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if err := s.bookRepo.Delete(id); err != nil {
		return err
	}

	if book.PdfPath != nil {
		s.removeFile(*book.PdfPath)
	}
	if book.CoverPath != nil {
		s.removeFile(*book.CoverPath)
	}
	return nil
}

// removeFile 尽力删除一个上传文件，失败只记日志。
func (s *catalogService) removeFile(relPath string) {
	if err := s.files.Remove(relPath); err != nil {
		log.Warnf("删除上传文件失败: %s, err=%v", relPath, err)
	}
}

// Genres 返回所有出现过的分类。
func (s *catalogService) Genres() ([]string, error) {
	return s.bookRepo.DistinctGenres()
}

// Languages 返回所有出现过的语言。
func (s *catalogService) Languages() ([]string, error) {
	return s.bookRepo.DistinctLanguages()
}

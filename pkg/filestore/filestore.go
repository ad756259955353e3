// Package filestore 管理本地磁盘上的上传文件。
// 文件名带毫秒时间戳前缀避免冲突，数据库里只存相对路径（uploads/xxx）。
package filestore

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Store 表示一个本地上传目录。
type Store struct {
	dir string
}

// New 创建一个 Store 并确保目录存在。
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir 返回上传目录的路径，用于静态文件服务。
func (s *Store) Dir() string {
	return s.dir
}

// Save 把上传的文件写入磁盘，返回存储的相对路径（uploads/<时间戳>-<原文件名>）。
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 时间戳前缀 + 原始文件名；basename 去掉客户端传来的路径部分
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "uploads/" + name, nil
}

// Remove 删除相对路径对应的文件。只取 basename，防止路径穿越到上传目录之外。
func (s *Store) Remove(relPath string) error {
	return os.Remove(filepath.Join(s.dir, path.Base(relPath)))
}

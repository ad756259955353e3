// Package main 是示例数据导入工具的入口点。
// 只在图书表为空时写入 15 本示例书，重复执行是幂等的。
package main

import (
	"fmt"

	"perpus-go/internal/config"
	"perpus-go/internal/model"
	"perpus-go/pkg/database"
	"perpus-go/pkg/log"
)

func main() {
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()

	database.InitMySQL(cfg.Database.MySQL.DSN)

	var count int64
	if err := database.DB.Model(&model.Book{}).Count(&count).Error; err != nil {
		log.Fatal("统计图书数量失败", err)
	}
	if count > 0 {
		log.Infof("图书表已有 %d 条记录，跳过导入", count)
		return
	}

	for i := 1; i <= 15; i++ {
		genre := fmt.Sprintf("Genre %d", i%5+1)
		language := fmt.Sprintf("Language %d", i%3+1)
		pdfPath := fmt.Sprintf("/path/to/book-%d.pdf", i)
		coverPath := fmt.Sprintf("/path/to/cover-%d.jpg", i)
		status := model.StatusBorrowed
		if i%2 == 0 {
			status = model.StatusAvailable
		}

		book := model.Book{
			Title:       fmt.Sprintf("Book Title %d", i),
			Author:      fmt.Sprintf("Author %d", i),
			Description: fmt.Sprintf("Description for book %d", i),
			Genre:       &genre,
			Language:    &language,
			Status:      status,
			PdfPath:     &pdfPath,
			CoverPath:   &coverPath,
		}
		if err := database.DB.Create(&book).Error; err != nil {
			log.Fatal("导入示例图书失败", err)
		}
	}
	log.Info("示例图书导入完成")
}

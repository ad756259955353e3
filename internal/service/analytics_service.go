package service

import (
	"perpus-go/internal/model"
	"perpus-go/internal/repository"
)

// analyticsDays 是访客趋势接口返回的天数窗口。
const analyticsDays = 30

// StatsDTO 是站点统计接口的响应对象。
// 访客总数在并发的跨日首请求下可能偏小（计数是有损的）。
type StatsDTO struct {
	TotalBooks     int64 `json:"totalBooks"`
	AvailableBooks int64 `json:"availableBooks"`
	BorrowedBooks  int64 `json:"borrowedBooks"`
	TotalVisitors  int64 `json:"totalVisitors"`
}

// AnalyticsService 接口定义了统计与访客趋势的业务操作。
type AnalyticsService interface {
	Stats() (*StatsDTO, error)
	RecentVisitors() ([]model.DailyVisitor, error)
}

type analyticsService struct {
	bookRepo    repository.BookRepository
	visitorRepo repository.VisitorRepository
}

// NewAnalyticsService 创建一个新的 AnalyticsService 实例。
func NewAnalyticsService(bookRepo repository.BookRepository, visitorRepo repository.VisitorRepository) AnalyticsService {
	return &analyticsService{bookRepo: bookRepo, visitorRepo: visitorRepo}
}

// Stats 汇总图书与访客的总量指标。借出数 = 总数 - 可借数。
func (s *analyticsService) Stats() (*StatsDTO, error) {
	total, err := s.bookRepo.Count()
	if err != nil {
		return nil, err
	}
	available, err := s.bookRepo.CountByStatus(model.StatusAvailable)
	if err != nil {
		return nil, err
	}
	visitors, err := s.visitorRepo.SumCounts()
	if err != nil {
		return nil, err
	}
	return &StatsDTO{
		TotalBooks:     total,
		AvailableBooks: available,
		BorrowedBooks:  total - available,
		TotalVisitors:  visitors,
	}, nil
}

// RecentVisitors 返回最近 30 天的访客记录，按日期升序。
func (s *analyticsService) RecentVisitors() ([]model.DailyVisitor, error) {
	return s.visitorRepo.FindRecent(analyticsDays)
}

package service

import (
	"errors"

	"perpus-go/internal/model"
	"perpus-go/internal/repository"
)

// ErrMissingAction 表示写日志请求缺少 action 字段。
var ErrMissingAction = errors.New("action is required")

// ActivityLogService 接口定义了操作日志的业务操作。
type ActivityLogService interface {
	Append(action string, details *string) (*model.ActivityLog, error)
	List() ([]model.ActivityLog, error)
	Clear() error
}

type activityLogService struct {
	logRepo repository.ActivityLogRepository
}

// NewActivityLogService 创建一个新的 ActivityLogService 实例。
func NewActivityLogService(logRepo repository.ActivityLogRepository) ActivityLogService {
	return &activityLogService{logRepo: logRepo}
}

// Append 追加一条操作日志，action 不能为空。
func (s *activityLogService) Append(action string, details *string) (*model.ActivityLog, error) {
	if action == "" {
		return nil, ErrMissingAction
	}
	entry := &model.ActivityLog{Action: action, Details: details}
	if err := s.logRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List 返回全部日志，最新的在前。
func (s *activityLogService) List() ([]model.ActivityLog, error) {
	return s.logRepo.FindAll()
}

// Clear 清空全部日志。
func (s *activityLogService) Clear() error {
	return s.logRepo.DeleteAll()
}

package service

import (
	"context"

	"github.com/yockii/markslide/internal/constant"
	"github.com/yockii/markslide/internal/model"
	"github.com/yockii/markslide/pkg/database"
	"github.com/yockii/markslide/pkg/logger"
	"github.com/yockii/markslide/pkg/util"
	"gorm.io/gorm"
)

// 历史记录保留条数上限
const maxHistoryRecords = 20

type historyService struct {
	db *gorm.DB
}

func NewHistoryService() HistoryService {
	return &historyService{db: database.GetDB()}
}

func (s *historyService) Load(ctx context.Context) ([]*model.PublishRecord, error) {
	var records []*model.PublishRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(maxHistoryRecords).
		Find(&records).Error
	if err != nil {
		logger.Error("读取发布历史失败", logger.F("err", err))
		return nil, constant.ErrInternalError
	}
	return records, nil
}

func (s *historyService) Save(ctx context.Context, record *model.PublishRecord) error {
	if record.ID == 0 {
		record.ID = util.NewID()
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		logger.Error("保存发布记录失败", logger.F("err", err))
		return constant.ErrInternalError
	}
	s.trim(ctx)
	return nil
}

// trim 裁剪超出上限的旧记录
func (s *historyService) trim(ctx context.Context) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.PublishRecord{}).
		Order("created_at DESC").
		Offset(maxHistoryRecords).
		Limit(100).
		Pluck("id", &ids).Error
	if err != nil {
		logger.Warn("查询过期历史失败", logger.F("err", err))
		return
	}
	if len(ids) == 0 {
		return
	}
	if err := s.db.WithContext(ctx).Delete(&model.PublishRecord{}, ids).Error; err != nil {
		logger.Warn("清理过期历史失败", logger.F("err", err))
	}
}

package service

import (
	"context"
	"fmt"

	"failcourse.com/internal/model"
	"gorm.io/gorm"
)

// HealthServiceImpl 实现 domain.HealthService 接口
type HealthServiceImpl struct {
	db *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthServiceImpl {
	return &HealthServiceImpl{db: db}
}

// CheckTables 逐表执行一次查询，确认全部数据表可访问
func (s *HealthServiceImpl) CheckTables(ctx context.Context) error {
	for _, table := range model.Tables() {
		var n int64
		if err := s.db.WithContext(ctx).Model(table).Count(&n).Error; err != nil {
			return fmt.Errorf("table %T not accessible: %w", table, err)
		}
	}
	return nil
}

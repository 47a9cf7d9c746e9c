package service

import (
	"context"
	"errors"
	"strings"

	"failcourse.com/internal/domain"
	"failcourse.com/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CareerServiceImpl 实现 domain.CareerService 接口
type CareerServiceImpl struct {
	db *gorm.DB
}

// NewCareerService 创建职业目录服务
func NewCareerService(db *gorm.DB) *CareerServiceImpl {
	return &CareerServiceImpl{db: db}
}

// ListPaths 获取全部目录条目
func (s *CareerServiceImpl) ListPaths(ctx context.Context) ([]model.CareerPath, error) {
	paths := []model.CareerPath{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&paths).Error; err != nil {
		return nil, domain.NewInternalError("Failed to fetch career paths", err)
	}
	return paths, nil
}

// ListTitles 获取全部标题
func (s *CareerServiceImpl) ListTitles(ctx context.Context) ([]string, error) {
	titles := []string{}
	if err := s.db.WithContext(ctx).Model(&model.CareerPath{}).Order("id ASC").Pluck("title", &titles).Error; err != nil {
		return nil, domain.NewInternalError("Failed to load career titles", err)
	}
	return titles, nil
}

// Search 标题子串匹配，区分大小写。
// 在内存中过滤，避免依赖不同数据库 LIKE 的大小写规则
func (s *CareerServiceImpl) Search(ctx context.Context, keyword string) ([]model.CareerSearchHit, error) {
	if keyword == "" {
		return nil, domain.NewBadRequestError("Search keyword is required")
	}

	var paths []model.CareerPath
	if err := s.db.WithContext(ctx).
		Select("id", "title", "description").
		Order("id ASC").
		Find(&paths).Error; err != nil {
		return nil, domain.NewInternalError("Search failed", err)
	}

	hits := make([]model.CareerSearchHit, 0)
	for _, p := range paths {
		if strings.Contains(p.Title, keyword) {
			hits = append(hits, model.CareerSearchHit{ID: p.ID, Title: p.Title, Description: p.Description})
		}
	}
	return hits, nil
}

// FindByTitle 按标题精确查找
func (s *CareerServiceImpl) FindByTitle(ctx context.Context, title string) (*model.CareerPath, error) {
	var path model.CareerPath
	if err := s.db.WithContext(ctx).Where("title = ?", title).First(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Career path not found")
		}
		return nil, domain.NewInternalError("Failed to fetch career detail", err)
	}
	return &path, nil
}

// CreatePath 新建目录条目 (管理员)
func (s *CareerServiceImpl) CreatePath(ctx context.Context, in domain.CareerPathInput) (*model.CareerPath, error) {
	if in.Title == "" {
		return nil, domain.NewBadRequestError("Career title is required")
	}

	if _, err := s.FindByTitle(ctx, in.Title); err == nil {
		return nil, domain.NewDuplicateError("Career path already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	path := model.CareerPath{
		Title:       in.Title,
		Description: in.Description,
		Steps:       in.Steps,
		Pitfalls:    in.Pitfalls,
		Resources:   in.Resources,
	}
	if err := s.db.WithContext(ctx).Create(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewDuplicateError("Career path already exists")
		}
		return nil, domain.NewInternalError("Failed to create career path", err)
	}

	log.Info().Str("title", path.Title).Uint("id", path.ID).Msg("CareerService: career path created")
	return &path, nil
}

// DeletePath 删除目录条目 (管理员)
func (s *CareerServiceImpl) DeletePath(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.CareerPath{}, id)
	if result.Error != nil {
		return domain.NewInternalError("Failed to delete career path", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Career path not found")
	}

	log.Info().Uint("id", id).Msg("CareerService: career path deleted")
	return nil
}

package service

import (
	"context"

	"failcourse.com/internal/domain"
	"failcourse.com/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StoryServiceImpl 实现 domain.StoryService 接口
type StoryServiceImpl struct {
	db    *gorm.DB
	users domain.UserService
}

// NewStoryService 创建故事服务
func NewStoryService(db *gorm.DB, users domain.UserService) *StoryServiceImpl {
	return &StoryServiceImpl{db: db, users: users}
}

// ListStories 获取全部故事及作者名
func (s *StoryServiceImpl) ListStories(ctx context.Context) ([]model.StorySummary, error) {
	var stories []model.FailCourse
	if err := s.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&stories).Error; err != nil {
		return nil, domain.NewInternalError("Failed to fetch stories", err)
	}

	out := make([]model.StorySummary, 0, len(stories))
	for _, st := range stories {
		sum := summarize(st)
		sum.User = st.User.Name
		out = append(out, sum)
	}
	return out, nil
}

// ListUserStories 获取某个用户的故事
func (s *StoryServiceImpl) ListUserStories(ctx context.Context, email string) ([]model.StorySummary, error) {
	if email == "" {
		return nil, domain.NewBadRequestError("Email is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var stories []model.FailCourse
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("id ASC").
		Find(&stories).Error; err != nil {
		return nil, domain.NewInternalError("Failed to fetch stories", err)
	}

	out := make([]model.StorySummary, 0, len(stories))
	for _, st := range stories {
		out = append(out, summarize(st))
	}
	return out, nil
}

// CreateStory 为用户新建故事
func (s *StoryServiceImpl) CreateStory(ctx context.Context, email string, in domain.StoryInput) (*model.StorySummary, error) {
	if email == "" || in.Title == "" || in.Story == "" {
		return nil, domain.NewBadRequestError("Email, title and story are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	story := model.FailCourse{
		UserID: user.ID,
		Title:  in.Title,
		Story:  in.Story,
		Lesson: in.Lesson,
		Tags:   in.Tags,
	}
	if err := s.db.WithContext(ctx).Create(&story).Error; err != nil {
		return nil, domain.NewInternalError("Failed to create story", err)
	}

	log.Info().Str("email", email).Uint("story_id", story.ID).Msg("StoryService: story created")
	sum := summarize(story)
	sum.User = user.Name
	return &sum, nil
}

func summarize(st model.FailCourse) model.StorySummary {
	return model.StorySummary{
		ID:     st.ID,
		Title:  st.Title,
		Story:  st.Story,
		Lesson: st.Lesson,
		Tags:   st.Tags,
	}
}

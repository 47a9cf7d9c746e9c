package service

import (
	"context"
	"errors"
	"strings"

	"failcourse.com/internal/ai"
	"failcourse.com/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	defaultQuoteTopic    = "failure"
	defaultCareerKeyword = "technology"
	maxFailureStories    = 10
	minFailureStoryWords = 50
	aiGeneratedDescLabel = "(AI Generated)"
)

// MentorServiceImpl 实现 domain.MentorService 接口
type MentorServiceImpl struct {
	gateway *ai.Gateway
	careers domain.CareerService
}

// NewMentorService 创建 AI 导师服务
func NewMentorService(gateway *ai.Gateway, careers domain.CareerService) *MentorServiceImpl {
	return &MentorServiceImpl{gateway: gateway, careers: careers}
}

// Quote 获取励志名言
func (s *MentorServiceImpl) Quote(ctx context.Context, topic string) string {
	if topic == "" {
		topic = defaultQuoteTopic
	}
	return s.gateway.Text(ctx, ai.QuotePrompt(topic))
}

// Guidance 原样转发问题
func (s *MentorServiceImpl) Guidance(ctx context.Context, text string) string {
	return s.gateway.Text(ctx, text)
}

// CareerDetails 目录命中直接返回，否则由 AI 生成说明
func (s *MentorServiceImpl) CareerDetails(ctx context.Context, title string) (*domain.CareerDetail, error) {
	if title == "" {
		return nil, domain.NewBadRequestError("Career title is required")
	}

	path, err := s.careers.FindByTitle(ctx, title)
	if err == nil {
		return &domain.CareerDetail{
			Title:       path.Title,
			Description: path.Description,
			Steps:       path.Steps,
			Pitfalls:    path.Pitfalls,
			Resources:   path.Resources,
		}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return &domain.CareerDetail{
		Title:       title,
		Description: aiGeneratedDescLabel,
		AIResult:    s.gateway.Text(ctx, ai.CareerDetailPrompt(title)),
	}, nil
}

// SuggestCareers 获取 AI 职业建议，只接受对象数组
func (s *MentorServiceImpl) SuggestCareers(ctx context.Context, keyword string) ([]any, error) {
	if keyword == "" {
		keyword = defaultCareerKeyword
	}

	res := s.gateway.JSON(ctx, ai.CareerSuggestionsPrompt(keyword))
	reason := res.Reason
	if res.OK() && !allObjects(res.Items) {
		reason = ai.ReasonUnexpectedShape
	}
	if reason != ai.ReasonNone {
		details := "Could not parse valid JSON array from AI response: " + reason.String()
		return nil, domain.NewUpstreamError("AI suggestion failed", details)
	}
	return res.Items, nil
}

// allObjects 建议列表必须非空且每一项都是对象
func allObjects(items []any) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, ok := item.(map[string]any); !ok {
			return false
		}
	}
	return true
}

// FailureStories 获取并校验 AI 生成的故事
func (s *MentorServiceImpl) FailureStories(ctx context.Context) ([]map[string]any, error) {
	res := s.gateway.JSON(ctx, ai.FailureStoriesPrompt)
	if !res.OK() {
		log.Warn().Str("reason", res.Reason.String()).Msg("MentorService: no failure stories available")
		return []map[string]any{}, nil
	}

	stories := ValidStories(res.Items)
	if len(stories) < len(res.Items) {
		log.Info().Int("received", len(res.Items)).Int("kept", len(stories)).Msg("MentorService: dropped malformed stories")
	}
	return stories, nil
}

// ValidStories keeps objects with a non-empty title and a story of at least
// minFailureStoryWords words, capped at maxFailureStories.
func ValidStories(items []any) []map[string]any {
	stories := make([]map[string]any, 0, maxFailureStories)
	for _, item := range items {
		if len(stories) == maxFailureStories {
			break
		}
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, _ := obj["title"].(string)
		story, _ := obj["story"].(string)
		if title == "" || story == "" {
			continue
		}
		if len(strings.Fields(story)) < minFailureStoryWords {
			continue
		}
		stories = append(stories, obj)
	}
	return stories
}

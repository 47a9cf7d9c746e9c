package domain

import (
	"context"
	"encoding/json"
	"time"

	"failcourse.com/internal/model"
)

// ===========================
// 用户 (凭证存储) 服务接口
// ===========================

// RegisterInput 注册/创建用户所需字段
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
	Role     string // 为空时使用 model.RoleUser
}

// ProfilePatch 只更新非空字段
type ProfilePatch struct {
	Name *string
	Bio  *string
}

// CareerPlan 用户保存的职业规划，列表字段为原始 JSON
type CareerPlan struct {
	Title       string
	Description string
	Steps       json.RawMessage
	Pitfalls    json.RawMessage
	Resources   json.RawMessage
}

// UserService 定义用户相关的业务操作
type UserService interface {
	// 注册用户，邮箱重复返回 ErrAlreadyExists
	CreateUser(ctx context.Context, in RegisterInput) (*model.User, error)
	// 校验邮箱和密码，失败统一返回 ErrUnauthorized
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	// 按邮箱查询
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// 更新姓名/简介
	UpdateProfile(ctx context.Context, email string, patch ProfilePatch) (*model.User, error)
	// 更新自由文本职业
	UpdateCareer(ctx context.Context, email, career string) error
	// 保存完整职业规划
	SaveCareerPlan(ctx context.Context, email string, plan CareerPlan) error
	// 确保管理员账号存在
	EnsureAdmin(ctx context.Context, in RegisterInput) error
}

// ===========================
// 故事服务接口
// ===========================

// StoryInput 新建故事所需字段
type StoryInput struct {
	Title  string
	Story  string
	Lesson string
	Tags   string
}

// StoryService 定义失败故事相关的业务操作
type StoryService interface {
	// 全部故事 (含作者名)
	ListStories(ctx context.Context) ([]model.StorySummary, error)
	// 某个用户的故事
	ListUserStories(ctx context.Context, email string) ([]model.StorySummary, error)
	// 新建故事
	CreateStory(ctx context.Context, email string, in StoryInput) (*model.StorySummary, error)
}

// ===========================
// 职业目录服务接口
// ===========================

// CareerPathInput 新建目录条目所需字段
type CareerPathInput struct {
	Title       string
	Description string
	Steps       string
	Pitfalls    string
	Resources   string
}

// CareerService 定义职业目录相关的业务操作
type CareerService interface {
	ListPaths(ctx context.Context) ([]model.CareerPath, error)
	ListTitles(ctx context.Context) ([]string, error)
	// 标题子串搜索 (区分大小写)
	Search(ctx context.Context, keyword string) ([]model.CareerSearchHit, error)
	// 按标题精确查找，不存在返回 ErrNotFound
	FindByTitle(ctx context.Context, title string) (*model.CareerPath, error)
	CreatePath(ctx context.Context, in CareerPathInput) (*model.CareerPath, error)
	DeletePath(ctx context.Context, id uint) error
}

// ===========================
// AI 导师服务接口
// ===========================

// CareerDetail 目录命中时返回目录字段，否则返回 AI 生成的文本
type CareerDetail struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       string `json:"steps,omitempty"`
	Pitfalls    string `json:"pitfalls,omitempty"`
	Resources   string `json:"resources,omitempty"`
	AIResult    string `json:"ai_result,omitempty"`
}

// MentorService 定义调用 AI 网关的业务操作
type MentorService interface {
	// 励志名言
	Quote(ctx context.Context, topic string) string
	// 自由问答
	Guidance(ctx context.Context, text string) string
	// 职业详情 (先查目录，再回退到 AI)
	CareerDetails(ctx context.Context, title string) (*CareerDetail, error)
	// AI 职业建议，解析失败返回 ErrUpstreamFailure
	SuggestCareers(ctx context.Context, keyword string) ([]any, error)
	// AI 生成的失败故事，最多 10 条
	FailureStories(ctx context.Context) ([]map[string]any, error)
}

// ===========================
// 令牌与健康检查接口
// ===========================

// TokenStore 记录已注销的令牌
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// HealthService 检查数据表是否可访问
type HealthService interface {
	CheckTables(ctx context.Context) error
}

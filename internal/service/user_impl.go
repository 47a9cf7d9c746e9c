package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"failcourse.com/internal/domain"
	"failcourse.com/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceImpl 实现 domain.UserService 接口
type UserServiceImpl struct {
	db *gorm.DB
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB) *UserServiceImpl {
	return &UserServiceImpl{db: db}
}

// CreateUser 注册新用户
func (s *UserServiceImpl) CreateUser(ctx context.Context, in domain.RegisterInput) (*model.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewBadRequestError("Missing name, email or password")
	}

	// 1. 邮箱唯一性检查
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, domain.NewInternalError("failed to check email", err)
	}
	if count > 0 {
		return nil, domain.NewDuplicateError("Email already exists")
	}

	// 2. 密码哈希
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	user := model.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Bio:      in.Bio,
		Role:     role,
	}

	// 3. 写入数据库 (并发注册时由唯一索引兜底)
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewDuplicateError("Email already exists")
		}
		return nil, domain.NewInternalError("failed to create user", err)
	}

	log.Info().Str("email", user.Email).Uint("id", user.ID).Msg("UserService: user registered")
	return &user, nil
}

// Authenticate 校验凭证，不区分"邮箱不存在"与"密码错误"
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	invalid := domain.NewUnauthorizedError("Invalid email or password")
	if email == "" || password == "" {
		return nil, invalid
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalid
	}
	return user, nil
}

// GetByEmail 按邮箱查询用户
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User not found")
		}
		return nil, domain.NewInternalError("failed to fetch user", err)
	}
	return &user, nil
}

// UpdateProfile 只覆盖提供且非空的字段
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, email string, patch domain.ProfilePatch) (*model.User, error) {
	if email == "" {
		return nil, domain.NewBadRequestError("Email is required")
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil && *patch.Name != "" {
		updates["name"] = *patch.Name
		user.Name = *patch.Name
	}
	if patch.Bio != nil && *patch.Bio != "" {
		updates["bio"] = *patch.Bio
		user.Bio = *patch.Bio
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return nil, domain.NewInternalError("failed to update profile", err)
	}
	return user, nil
}

// UpdateCareer 更新自由文本职业字段
func (s *UserServiceImpl) UpdateCareer(ctx context.Context, email, career string) error {
	if email == "" || career == "" {
		return domain.NewBadRequestError("Email and career are required")
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Update("career", career).Error; err != nil {
		return domain.NewInternalError("failed to update career", err)
	}
	return nil
}

// SaveCareerPlan 保存职业规划，列表字段序列化为 JSON 文本
func (s *UserServiceImpl) SaveCareerPlan(ctx context.Context, email string, plan domain.CareerPlan) error {
	if email == "" || plan.Title == "" {
		return domain.NewBadRequestError("Missing required fields")
	}

	steps, err := encodeList("steps", plan.Steps)
	if err != nil {
		return err
	}
	pitfalls, err := encodeList("pitfalls", plan.Pitfalls)
	if err != nil {
		return err
	}
	resources, err := encodeList("resources", plan.Resources)
	if err != nil {
		return err
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"career_title":       plan.Title,
		"career_description": plan.Description,
		"career_steps":       steps,
		"career_pitfalls":    pitfalls,
		"career_resources":   resources,
	}
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return domain.NewInternalError("failed to save career", err)
	}
	return nil
}

// EnsureAdmin 管理员不存在时创建
func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, in domain.RegisterInput) error {
	in.Role = model.RoleAdmin
	_, err := s.CreateUser(ctx, in)
	if err == nil {
		log.Info().Str("email", in.Email).Msg("UserService: admin user created")
		return nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		log.Info().Str("email", in.Email).Msg("UserService: admin user already exists")
		return nil
	}
	return err
}

// encodeList 校验原始 JSON 为列表并返回其紧凑文本，缺省或 null 记为 "[]"。
// 原样保存字节，数字不经过 float64
func encodeList(field string, raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "[]", nil
	}

	if trimmed[0] != '[' || !json.Valid(trimmed) {
		return "", domain.NewBadRequestError(field + " must be a list")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", domain.NewInternalError("failed to encode "+field, err)
	}
	return buf.String(), nil
}

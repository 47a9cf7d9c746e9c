package api

import (
	"encoding/json"

	"failcourse.com/internal/domain"
	"failcourse.com/internal/model"
	"github.com/gofiber/fiber/v2"
)

// ProfileHandler 处理个人资料与职业字段
type ProfileHandler struct {
	userSvc domain.UserService
}

// NewProfileHandler 创建个人资料处理器
func NewProfileHandler(userSvc domain.UserService) *ProfileHandler {
	return &ProfileHandler{userSvc: userSvc}
}

type UpdateProfileRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Bio   *string `json:"bio"`
}

type UpdateProfileResponse struct {
	Message string            `json:"message"`
	User    model.ProfileView `json:"user"`
}

type UpdateCareerRequest struct {
	Email  string `json:"email"`
	Career string `json:"career"`
}

type SaveCareerRequest struct {
	Email       string          `json:"email"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Steps       json.RawMessage `json:"steps"`
	Pitfalls    json.RawMessage `json:"pitfalls"`
	Resources   json.RawMessage `json:"resources"`
}

// GetMe 按邮箱获取完整用户视图
// GET /me?email=
func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return handleError(c, domain.NewBadRequestError("Email is required"))
	}

	user, err := h.userSvc.GetByEmail(c.UserContext(), email)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user.View())
}

// GetProfile 获取精简的个人资料
// GET /profile?email=
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.userSvc.GetByEmail(c.UserContext(), c.Query("email"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user.Profile())
}

// UpdateProfile 更新姓名/简介
// PUT /profile
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.userSvc.UpdateProfile(c.UserContext(), req.Email, domain.ProfilePatch{Name: req.Name, Bio: req.Bio})
	if err != nil {
		return handleError(c, err)
	}

	profile := user.Profile()
	profile.ID = 0
	return c.JSON(UpdateProfileResponse{Message: "Profile updated successfully", User: profile})
}

// UpdateCareer 更新自由文本职业
// POST /update-career
func (h *ProfileHandler) UpdateCareer(c *fiber.Ctx) error {
	var req UpdateCareerRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	if err := h.userSvc.UpdateCareer(c.UserContext(), req.Email, req.Career); err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Career updated successfully"})
}

// SaveCareer 保存完整职业规划
// POST /save-career
func (h *ProfileHandler) SaveCareer(c *fiber.Ctx) error {
	var req SaveCareerRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	err := h.userSvc.SaveCareerPlan(c.UserContext(), req.Email, domain.CareerPlan{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Pitfalls:    req.Pitfalls,
		Resources:   req.Resources,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Career updated successfully"})
}

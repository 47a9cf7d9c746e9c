package api

import (
	"failcourse.com/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// StoryHandler 处理失败故事相关的 HTTP 请求
type StoryHandler struct {
	storySvc domain.StoryService
}

// NewStoryHandler 创建故事处理器
func NewStoryHandler(storySvc domain.StoryService) *StoryHandler {
	return &StoryHandler{storySvc: storySvc}
}

type CreateStoryRequest struct {
	Email  string `json:"email"`
	Title  string `json:"title"`
	Story  string `json:"story"`
	Lesson string `json:"lesson"`
	Tags   string `json:"tags"`
}

// GetStories 获取全部故事
// GET /stories
func (h *StoryHandler) GetStories(c *fiber.Ctx) error {
	stories, err := h.storySvc.ListStories(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stories)
}

// GetUserStories 获取某个用户的故事
// GET /user-stories?email=
func (h *StoryHandler) GetUserStories(c *fiber.Ctx) error {
	stories, err := h.storySvc.ListUserStories(c.UserContext(), c.Query("email"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stories)
}

// CreateStory 新建故事
// POST /stories
func (h *StoryHandler) CreateStory(c *fiber.Ctx) error {
	var req CreateStoryRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	story, err := h.storySvc.CreateStory(c.UserContext(), req.Email, domain.StoryInput{
		Title:  req.Title,
		Story:  req.Story,
		Lesson: req.Lesson,
		Tags:   req.Tags,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(story)
}

package api

import (
	"failcourse.com/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// MentorHandler 处理调用 AI 网关的 HTTP 请求
type MentorHandler struct {
	mentorSvc domain.MentorService
}

// NewMentorHandler 创建 AI 导师处理器
func NewMentorHandler(mentorSvc domain.MentorService) *MentorHandler {
	return &MentorHandler{mentorSvc: mentorSvc}
}

type QuoteRequest struct {
	Topic string `json:"topic"`
}

type GuidanceRequest struct {
	Text   string `json:"text"`
	Prompt string `json:"prompt"`
}

type CareersRequest struct {
	Keyword string `json:"keyword"`
}

// Quote 励志名言，topic 缺省为 failure
// POST /ai-quote
func (h *MentorHandler) Quote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"quote": h.mentorSvc.Quote(c.UserContext(), req.Topic)})
}

// Guidance 自由问答，仅接受 text 字段
// POST /ai-guidance
func (h *MentorHandler) Guidance(c *fiber.Ctx) error {
	var req GuidanceRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}
	if req.Text == "" {
		return handleError(c, domain.NewBadRequestError("Input text is required"))
	}
	return c.JSON(fiber.Map{"result": h.mentorSvc.Guidance(c.UserContext(), req.Text)})
}

// Guide 与 Guidance 相同，优先使用 prompt 字段
// POST /ai-guide
func (h *MentorHandler) Guide(c *fiber.Ctx) error {
	var req GuidanceRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}
	prompt := req.Prompt
	if prompt == "" {
		prompt = req.Text
	}
	if prompt == "" {
		return handleError(c, domain.NewBadRequestError("Prompt is required"))
	}
	return c.JSON(fiber.Map{"answer": h.mentorSvc.Guidance(c.UserContext(), prompt)})
}

// Careers AI 职业建议
// POST /ai-careers
func (h *MentorHandler) Careers(c *fiber.Ctx) error {
	var req CareersRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	careers, err := h.mentorSvc.SuggestCareers(c.UserContext(), req.Keyword)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"careers": careers})
}

// Stories AI 生成的失败故事
// GET /ai-stories
func (h *MentorHandler) Stories(c *fiber.Ctx) error {
	stories, err := h.mentorSvc.FailureStories(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"stories": stories})
}

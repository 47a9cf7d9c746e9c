package api

import (
	"strconv"

	"failcourse.com/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// CareerHandler 处理职业目录相关的 HTTP 请求
type CareerHandler struct {
	careerSvc domain.CareerService
	mentorSvc domain.MentorService
}

// NewCareerHandler 创建职业目录处理器
func NewCareerHandler(careerSvc domain.CareerService, mentorSvc domain.MentorService) *CareerHandler {
	return &CareerHandler{careerSvc: careerSvc, mentorSvc: mentorSvc}
}

type CareerDetailsRequest struct {
	Title string `json:"title"`
}

type CreateCareerPathRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       string `json:"steps"`
	Pitfalls    string `json:"pitfalls"`
	Resources   string `json:"resources"`
}

// GetCareerPaths 获取全部目录条目
// GET /career-paths
func (h *CareerHandler) GetCareerPaths(c *fiber.Ctx) error {
	paths, err := h.careerSvc.ListPaths(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(paths)
}

// GetCareerOptions 获取全部标题
// GET /career-options
func (h *CareerHandler) GetCareerOptions(c *fiber.Ctx) error {
	titles, err := h.careerSvc.ListTitles(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"options": titles})
}

// SearchCareers 标题子串搜索
// GET /career-search?q=
func (h *CareerHandler) SearchCareers(c *fiber.Ctx) error {
	hits, err := h.careerSvc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(hits)
}

// GetCareerDetails 目录详情，未收录时由 AI 生成
// POST /career-details
func (h *CareerHandler) GetCareerDetails(c *fiber.Ctx) error {
	var req CareerDetailsRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	detail, err := h.mentorSvc.CareerDetails(c.UserContext(), req.Title)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(detail)
}

// CreateCareerPath 新建目录条目
// POST /admin/career-paths
func (h *CareerHandler) CreateCareerPath(c *fiber.Ctx) error {
	var req CreateCareerPathRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	path, err := h.careerSvc.CreatePath(c.UserContext(), domain.CareerPathInput{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Pitfalls:    req.Pitfalls,
		Resources:   req.Resources,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(path)
}

// DeleteCareerPath 删除目录条目
// DELETE /admin/career-paths/:id
func (h *CareerHandler) DeleteCareerPath(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handleError(c, domain.NewBadRequestError("Invalid career path id"))
	}

	if err := h.careerSvc.DeletePath(c.UserContext(), uint(id)); err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Career path deleted"})
}

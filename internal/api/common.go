package api

import (
	"errors"

	"failcourse.com/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorResponse 统一的错误响应结构
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse 统一的成功消息结构
type MessageResponse struct {
	Message string `json:"message"`
}

// handleError 将业务错误映射为 HTTP 状态码和 JSON 错误体
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details
		if appErr.Code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
			if details == "" && appErr.Err != nil {
				details = appErr.Err.Error()
			}
		}
		return c.Status(appErr.Code).JSON(ErrorResponse{Error: appErr.Message, Details: details})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

// bindJSON 解析请求体；空请求体视为所有字段缺省
func bindJSON(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return domain.NewBadRequestError("Invalid request body")
	}
	return nil
}

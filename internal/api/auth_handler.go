package api

import (
	"time"

	"failcourse.com/internal/api/middleware"
	"failcourse.com/internal/auth"
	"failcourse.com/internal/domain"
	"failcourse.com/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthHandler 处理注册、登录、注销
type AuthHandler struct {
	userSvc domain.UserService
	tokens  *auth.TokenManager
	revoked domain.TokenStore
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(userSvc domain.UserService, tokens *auth.TokenManager, revoked domain.TokenStore) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, tokens: tokens, revoked: revoked}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	User model.UserView `json:"user"`
}

type AuthResponse struct {
	User  model.UserView `json:"user"`
	Token string         `json:"token"`
}

// Register creates a new user (default role: user)
// POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.userSvc.CreateUser(c.UserContext(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(UserResponse{User: user.View()})
}

// Login authenticates user and returns the user view with a JWT
// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.userSvc.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return handleError(c, domain.NewInternalError("Failed to sign token", err))
	}

	return c.JSON(AuthResponse{User: user.View(), Token: token})
}

// Logout 将当前令牌加入 Redis 黑名单直到过期
// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "Unauthorized"})
	}

	if err := h.revoked.Revoke(c.UserContext(), claims.ID, claims.TTL(time.Now())); err != nil {
		return handleError(c, domain.NewInternalError("Failed to logout", err))
	}

	log.Info().Str("email", claims.Email).Msg("AuthHandler: user logged out")
	return c.JSON(MessageResponse{Message: "Logged out successfully"})
}

package api

import (
	"failcourse.com/internal/api/middleware"
	"failcourse.com/internal/auth"
	"failcourse.com/internal/domain"
	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
)

// Deps 路由依赖的服务
type Deps struct {
	Users    domain.UserService
	Stories  domain.StoryService
	Careers  domain.CareerService
	Mentor   domain.MentorService
	Health   domain.HealthService
	Tokens   *auth.TokenManager
	Revoked  domain.TokenStore
	Enforcer *casbin.Enforcer
}

// Router 负责注册所有路由
type Router struct {
	app  *fiber.App
	deps Deps
}

func NewRouter(app *fiber.App, deps Deps) *Router {
	return &Router{app: app, deps: deps}
}

// RegisterRoutes 注册所有业务路由
func (r *Router) RegisterRoutes() {
	// 1. 初始化各个 Handler
	authHandler := NewAuthHandler(r.deps.Users, r.deps.Tokens, r.deps.Revoked)
	profileHandler := NewProfileHandler(r.deps.Users)
	storyHandler := NewStoryHandler(r.deps.Stories)
	careerHandler := NewCareerHandler(r.deps.Careers, r.deps.Mentor)
	mentorHandler := NewMentorHandler(r.deps.Mentor)

	jwt := middleware.JWTMiddleware(r.deps.Tokens, r.deps.Revoked)

	// 2. 公开路由
	r.registerSystemRoutes()
	r.registerAuthRoutes(authHandler, jwt)
	r.registerProfileRoutes(profileHandler)
	r.registerStoryRoutes(storyHandler)
	r.registerCareerRoutes(careerHandler)
	r.registerMentorRoutes(mentorHandler)

	// 3. 管理后台 (JWT + Casbin)
	admin := r.app.Group("/admin", jwt, middleware.CasbinMiddleware(r.deps.Enforcer))
	admin.Post("/career-paths", careerHandler.CreateCareerPath)
	admin.Delete("/career-paths/:id", careerHandler.DeleteCareerPath)
}

func (r *Router) registerSystemRoutes() {
	r.app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is live")
	})

	// Health Check
	r.app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	r.app.Get("/test-tables", func(c *fiber.Ctx) error {
		if err := r.deps.Health.CheckTables(c.UserContext()); err != nil {
			return handleError(c, domain.NewInternalError("Table check failed", err))
		}
		return c.JSON(fiber.Map{"status": "All tables accessible"})
	})
}

func (r *Router) registerAuthRoutes(h *AuthHandler, jwt fiber.Handler) {
	r.app.Post("/register", h.Register)
	r.app.Post("/login", h.Login)
	r.app.Post("/logout", jwt, h.Logout)
}

func (r *Router) registerProfileRoutes(h *ProfileHandler) {
	r.app.Get("/me", h.GetMe)
	r.app.Get("/profile", h.GetProfile)
	r.app.Put("/profile", h.UpdateProfile)
	r.app.Post("/update-career", h.UpdateCareer)
	r.app.Post("/save-career", h.SaveCareer)
}

func (r *Router) registerStoryRoutes(h *StoryHandler) {
	r.app.Get("/stories", h.GetStories)
	r.app.Post("/stories", h.CreateStory)
	r.app.Get("/user-stories", h.GetUserStories)
}

func (r *Router) registerCareerRoutes(h *CareerHandler) {
	r.app.Get("/career-paths", h.GetCareerPaths)
	r.app.Get("/career-options", h.GetCareerOptions)
	r.app.Get("/career-search", h.SearchCareers)
	r.app.Post("/career-details", h.GetCareerDetails)
}

func (r *Router) registerMentorRoutes(h *MentorHandler) {
	r.app.Post("/ai-quote", h.Quote)
	r.app.Post("/ai-guidance", h.Guidance)
	r.app.Post("/ai-guide", h.Guide)
	r.app.Post("/ai-careers", h.Careers)
	r.app.Get("/ai-stories", h.Stories)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"failcourse.com/internal/ai"
	"failcourse.com/internal/api"
	"failcourse.com/internal/auth"
	"failcourse.com/internal/config"
	"failcourse.com/internal/domain"
	"failcourse.com/internal/infra"
	"failcourse.com/internal/model"
	"failcourse.com/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}

// run 组装依赖并阻塞到收到退出信号；返回错误而不是直接退出，保证 defer 被执行
func run() error {
	// 1. 加载配置
	cfg := config.LoadConfig()
	infra.SetupLogger(cfg.Log)

	// 2. 初始化基础设施
	// Postgres
	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pg.Close()

	// Redis
	rdb, err := infra.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer rdb.Close()

	// Casbin
	enforcer, err := auth.InitCasbin(pg.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize casbin: %w", err)
	}

	// 3. 初始化服务
	userSvc := service.NewUserService(pg.DB)
	careerSvc := service.NewCareerService(pg.DB)
	gateway := ai.NewGateway(ai.NewClient(cfg.AI))

	if cfg.AI.APIKey == "" {
		log.Warn().Msg("AI API key is not set, AI endpoints will answer with a misconfiguration reply")
	}

	err = userSvc.EnsureAdmin(context.Background(), domain.RegisterInput{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Bio:      cfg.Admin.Bio,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}

	// 4. 设置 Fiber 服务器
	app := api.NewServer(cfg.Server)
	api.NewRouter(app, api.Deps{
		Users:    userSvc,
		Stories:  service.NewStoryService(pg.DB, userSvc),
		Careers:  careerSvc,
		Mentor:   service.NewMentorService(gateway, careerSvc),
		Health:   service.NewHealthService(pg.DB),
		Tokens:   auth.NewTokenManager(cfg.JWT),
		Revoked:  infra.NewRedisTokenStore(rdb),
		Enforcer: enforcer,
	}).RegisterRoutes()

	// 5. 启动服务器
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	return serve(app, cfg.Server.Port, stop)
}

// serve 监听 addr 直到 stop 收到信号，然后优雅关闭
func serve(app *fiber.App, addr string, stop <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", addr).Msg("Server starting")
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-stop:
	}

	// 6. Graceful Shutdown
	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info().Msg("Server exited")
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"failcourse.com/internal/domain"
	"failcourse.com/internal/infra"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试使用独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustRegister(t *testing.T, svc *UserServiceImpl, name, email, password string) {
	t.Helper()
	_, err := svc.CreateUser(context.Background(), domain.RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		t.Fatalf("CreateUser(%s) error = %v", email, err)
	}
}

// assertAppError 检查错误码与消息
func assertAppError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *domain.AppError", err)
	}
	if appErr.Code != code {
		t.Errorf("code = %d, want %d", appErr.Code, code)
	}
	if msg != "" && appErr.Message != msg {
		t.Errorf("message = %q, want %q", appErr.Message, msg)
	}
}

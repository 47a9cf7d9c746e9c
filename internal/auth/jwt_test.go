package auth

import (
	"errors"
	"testing"
	"time"

	"failcourse.com/internal/config"
	"failcourse.com/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func testUser() *model.User {
	return &model.User{Model: gorm.Model{ID: 42}, Email: "ada@example.com", Role: model.RoleAdmin}
}

func newTestManager(now time.Time) *TokenManager {
	m := NewTokenManager(config.JWTConfig{Secret: testSecret, Issuer: "failcourse", ExpireHours: 1})
	m.now = func() time.Time { return now }
	return m
}

// =============================================================================
// Issue / Parse Tests
// =============================================================================

func TestTokenManager_IssueAndParse(t *testing.T) {
	now := time.Now()
	m := newTestManager(now)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if claims.Email != "ada@example.com" || claims.Role != model.RoleAdmin {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("claims.ID (jti) should be set")
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want user id", claims.Subject)
	}
	if ttl := claims.TTL(now); ttl <= 59*time.Minute || ttl > time.Hour {
		t.Errorf("TTL() = %v, want about 1h", ttl)
	}
}

func TestTokenManager_UniqueJTI(t *testing.T) {
	m := newTestManager(time.Now())

	a, _ := m.Issue(testUser())
	b, _ := m.Issue(testUser())
	ca, _ := m.Parse(a)
	cb, _ := m.Parse(b)

	if ca == nil || cb == nil {
		t.Fatal("Parse() returned nil claims")
	}
	if ca.ID == cb.ID {
		t.Error("two tokens should not share a jti")
	}
}

func TestTokenManager_Parse_Invalid(t *testing.T) {
	now := time.Now()
	m := newTestManager(now)
	token, _ := m.Issue(testUser())

	expired := newTestManager(now.Add(2 * time.Hour))
	otherSecret := NewTokenManager(config.JWTConfig{Secret: "another-secret-key-at-least-32-chars", Issuer: "failcourse"})
	otherIssuer := NewTokenManager(config.JWTConfig{Secret: testSecret, Issuer: "someone-else"})

	noJTI := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "failcourse",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	noJTIString, _ := noJTI.SignedString([]byte(testSecret))

	tests := []struct {
		name  string
		m     *TokenManager
		token string
	}{
		{"expired", expired, token},
		{"wrong secret", otherSecret, token},
		{"wrong issuer", otherIssuer, token},
		{"garbage", m, "not-a-token"},
		{"missing jti", m, noJTIString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Parse(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestNewTokenManager_DefaultExpiry(t *testing.T) {
	m := NewTokenManager(config.JWTConfig{Secret: testSecret})
	if m.ttl != 72*time.Hour {
		t.Errorf("ttl = %v, want 72h", m.ttl)
	}
}

func TestClaims_TTL_NoExpiry(t *testing.T) {
	c := &Claims{}
	if ttl := c.TTL(time.Now()); ttl != 0 {
		t.Errorf("TTL() = %v, want 0", ttl)
	}
}

package model

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered member of the platform
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"` // Mandatory and unique
	Password string `gorm:"not null"`             // bcrypt hash
	Bio      string
	Career   string
	Role     string `gorm:"default:'user'"`

	// 保存的 AI 职业规划，列表字段以 JSON 文本存储
	CareerTitle       string
	CareerDescription string `gorm:"type:text"`
	CareerSteps       string `gorm:"type:text"`
	CareerPitfalls    string `gorm:"type:text"`
	CareerResources   string `gorm:"type:text"`

	Stories []FailCourse `gorm:"foreignKey:UserID"`
}

// UserView 是对外序列化的用户视图，不含密码
type UserView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Bio               string `json:"bio"`
	Career            string `json:"career"`
	Role              string `json:"role"`
	CareerTitle       string `json:"career_title"`
	CareerDescription string `json:"career_description"`
	CareerSteps       []any  `json:"career_steps"`
	CareerPitfalls    []any  `json:"career_pitfalls"`
	CareerResources   []any  `json:"career_resources"`
}

// ProfileView is the reduced shape returned by the profile endpoints
type ProfileView struct {
	ID    uint   `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	Role  string `json:"role"`
}

// View converts the stored row to its public representation.
func (u *User) View() UserView {
	return UserView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Bio:               u.Bio,
		Career:            u.Career,
		Role:              u.Role,
		CareerTitle:       u.CareerTitle,
		CareerDescription: u.CareerDescription,
		CareerSteps:       decodeList(u.Email, "career_steps", u.CareerSteps),
		CareerPitfalls:    decodeList(u.Email, "career_pitfalls", u.CareerPitfalls),
		CareerResources:   decodeList(u.Email, "career_resources", u.CareerResources),
	}
}

// Profile returns the reduced profile view.
func (u *User) Profile() ProfileView {
	return ProfileView{ID: u.ID, Name: u.Name, Email: u.Email, Bio: u.Bio, Role: u.Role}
}

// decodeList 解析存储的 JSON 列表。空值或非列表内容一律返回空列表
func decodeList(email, field, raw string) []any {
	list := []any{}
	if raw == "" {
		return list
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&list); err != nil || list == nil {
		log.Warn().Str("email", email).Str("field", field).Msg("stored career field is not a JSON list")
		return []any{}
	}
	return list
}

package model

// Question is a member question. No route writes it yet; it takes part in the table check.
type Question struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	UserID  uint     `gorm:"index;not null" json:"user_id"`
	User    User     `gorm:"foreignKey:UserID" json:"-"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// Answer belongs to a Question and to the User who wrote it
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

// Tables lists every model managed by AutoMigrate, in dependency order.
func Tables() []interface{} {
	return []interface{}{
		&User{},
		&FailCourse{},
		&CareerPath{},
		&Question{},
		&Answer{},
	}
}

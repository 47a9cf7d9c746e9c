package model

// FailCourse 用户的失败与重新出发的故事
type FailCourse struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Title  string `gorm:"not null" json:"title"`
	Story  string `gorm:"type:text;not null" json:"story"`
	Lesson string `gorm:"type:text" json:"lesson"`
	Tags   string `json:"tags"`
}

// StorySummary is one entry of the public story feed, joined with its author
type StorySummary struct {
	ID     uint   `json:"id"`
	User   string `json:"user,omitempty"`
	Title  string `json:"title"`
	Story  string `json:"story"`
	Lesson string `json:"lesson"`
	Tags   string `json:"tags"`
}

package model

// CareerPath 职业目录条目，按 Title 查找
type CareerPath struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Steps       string `gorm:"type:text" json:"steps"`
	Pitfalls    string `gorm:"type:text" json:"pitfalls"`
	Resources   string `gorm:"type:text" json:"resources"`
}

// CareerSearchHit is the reduced shape returned by catalog search
type CareerSearchHit struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

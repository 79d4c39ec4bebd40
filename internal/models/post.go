package models

// Post represents a post in the Gatorkut feed.
//
// CreatedAt is stored and serialized as milliseconds since the Unix epoch.
// Likes and Meows are plain counters; incrementing them is not idempotent.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	Text      string `gorm:"type:text" json:"text"`
	Image     string `json:"image"`
	Likes     uint   `gorm:"not null;default:0" json:"likes"`
	Meows     uint   `gorm:"not null;default:0" json:"meows"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

package models

// Comment represents a comment on a post. Comments are immutable once created.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PostID    uint   `gorm:"not null;index" json:"post_id"`
	UserID    uint   `gorm:"not null" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	Text      string `gorm:"type:text;not null" json:"text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

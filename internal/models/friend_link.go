package models

import "time"

// FriendLinkStatus represents the status of a friend request.
type FriendLinkStatus string

const (
	// FriendLinkStatusPending indicates a friend request awaiting acceptance.
	FriendLinkStatusPending FriendLinkStatus = "pending"
	// FriendLinkStatusAccepted indicates an accepted friend request.
	FriendLinkStatusAccepted FriendLinkStatus = "accepted"
)

// FriendLink represents a friend request between two users. At most one link
// may exist per user pair, in either direction; handlers check both
// directions before insert, and the composite index blocks same-direction
// duplicates at the storage layer.
type FriendLink struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friend_link_pair" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_friend_link_pair" json:"addressee_id"`
	Status      FriendLinkStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// TableName specifies the table name for GORM.
func (FriendLink) TableName() string {
	return "friend_links"
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered Gatorkut account.
//
// MeowPoints is a reputation counter incremented whenever another user meows
// one of this user's posts. It only ever grows.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DisplayName  string    `json:"display_name"`
	Avatar       string    `json:"avatar"`
	About        string    `gorm:"type:text" json:"about"`
	MeowPoints   uint      `gorm:"not null;default:0" json:"meow_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

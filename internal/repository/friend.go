package repository

import (
	"context"
	"errors"

	"gatorkut/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines persistence operations for friend links.
type FriendRepository interface {
	Create(ctx context.Context, link *models.FriendLink) error
	GetByID(ctx context.Context, id uint) (*models.FriendLink, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendLink, error)
	GetPendingForUser(ctx context.Context, userID uint) ([]models.FriendLink, error)
	UpdateStatus(ctx context.Context, id uint, status models.FriendLinkStatus) error
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository returns a new FriendRepository implementation.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, link *models.FriendLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Friend request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.FriendLink, error) {
	var link models.FriendLink
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friend request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

// GetBetweenUsers finds the link between two users in either direction.
// Returns (nil, nil) when no link exists.
func (r *friendRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.FriendLink, error) {
	var link models.FriendLink
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &link, nil
}

// GetPendingForUser lists pending requests addressed to the user.
func (r *friendRepository) GetPendingForUser(ctx context.Context, userID uint) ([]models.FriendLink, error) {
	var links []models.FriendLink
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendLinkStatusPending).
		Order("created_at DESC").
		Find(&links).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return links, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, id uint, status models.FriendLinkStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.FriendLink{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Friend request", id)
	}
	return nil
}

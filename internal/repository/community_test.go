package repository

import (
	"context"
	"testing"

	"gatorkut/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinIsIdempotent(t *testing.T) {
	repo := NewCommunityRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t, "community_owner")
	member := createTestUser(t, "community_member")

	community := &models.Community{Name: "Gator Pond", Description: "swamp talk", OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, community))

	require.NoError(t, repo.Join(ctx, community.ID, member.ID))
	require.NoError(t, repo.Join(ctx, community.ID, member.ID))

	var count int64
	require.NoError(t, testDB.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", community.ID, member.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLeaveUnjoinedIsNoOp(t *testing.T) {
	repo := NewCommunityRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t, "leave_owner")
	stranger := createTestUser(t, "leave_stranger")

	community := &models.Community{Name: "Empty Pond", OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, community))

	assert.NoError(t, repo.Leave(ctx, community.ID, stranger.ID))
}

func TestLeaveRemovesMembership(t *testing.T) {
	repo := NewCommunityRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t, "rejoin_owner")
	member := createTestUser(t, "rejoin_member")

	community := &models.Community{Name: "Rejoin Pond", OwnerID: owner.ID}
	require.NoError(t, repo.Create(ctx, community))

	require.NoError(t, repo.Join(ctx, community.ID, member.ID))
	require.NoError(t, repo.Leave(ctx, community.ID, member.ID))

	var count int64
	require.NoError(t, testDB.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", community.ID, member.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

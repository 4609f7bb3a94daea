package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-gallery-api/internal/domain"
)

func TestRateReplacesPriorRating(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	p := seedPhoto(t, f.db, g, alice, "sunset", domain.StatusPublic)

	_, err := f.ratings.Rate(ctx, alice, p, 2)
	require.NoError(t, err)
	_, err = f.ratings.Rate(ctx, alice, p, 5)
	require.NoError(t, err)

	var n int64
	require.NoError(t, f.db.Model(&domain.Rating{}).
		Where("user_id = ? AND photo_id = ?", alice.ID, p.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n, "re-rating must not leave a second row")

	avg, err := f.ratings.AverageByPhoto(ctx, p)
	require.NoError(t, err)
	assert.EqualValues(t, 5, avg)
}

func TestAverageAcrossUsers(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	bob := seedUser(t, f.db, "bob", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	p := seedPhoto(t, f.db, g, alice, "sunset", domain.StatusPublic)

	_, err := f.ratings.Rate(ctx, alice, p, 4)
	require.NoError(t, err)
	_, err = f.ratings.Rate(ctx, bob, p, 2)
	require.NoError(t, err)

	avg, err := f.ratings.AverageByPhoto(ctx, p)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-9)
}

func TestAverageWithoutRatingsIsZero(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	p := seedPhoto(t, f.db, g, alice, "unrated", domain.StatusPublic)

	avg, err := f.ratings.AverageByPhoto(ctx, p)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestTopPhotosOrderedByAverage(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	bob := seedUser(t, f.db, "bob", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	low := seedPhoto(t, f.db, g, alice, "low", domain.StatusPublic)
	high := seedPhoto(t, f.db, g, alice, "high", domain.StatusPublic)

	for _, r := range []struct {
		user  *domain.User
		photo *domain.Photo
		value float64
	}{
		{alice, low, 2}, {bob, low, 1},
		{alice, high, 5}, {bob, high, 4},
	} {
		_, err := f.ratings.Rate(ctx, r.user, r.photo, r.value)
		require.NoError(t, err)
	}

	page, err := f.ratings.TopPhotos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, high.ID, page.Items[0].PhotoID)
	assert.Equal(t, low.ID, page.Items[1].PhotoID)
	assert.Greater(t, page.Items[0].Average, page.Items[1].Average)
}

func TestDeleteRating(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	p := seedPhoto(t, f.db, g, alice, "sunset", domain.StatusPublic)

	r, err := f.ratings.Rate(ctx, alice, p, 3)
	require.NoError(t, err)
	require.NoError(t, f.ratings.Delete(ctx, r))

	avg, err := f.ratings.AverageByPhoto(ctx, p)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

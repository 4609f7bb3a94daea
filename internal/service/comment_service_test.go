package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-gallery-api/internal/domain"
)

func TestCommentLifecycle(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "g", *alice)
	p := seedPhoto(t, f.db, g, alice, "sunset", domain.StatusPublic)

	c := &domain.Comment{Content: "nice shot"}
	require.NoError(t, f.comments.Create(c, alice, p))
	assert.Equal(t, alice.ID, c.UserID)
	assert.Equal(t, p.ID, c.PhotoID)

	byPhoto, err := f.comments.ListByPhoto(p, 1)
	require.NoError(t, err)
	require.Len(t, byPhoto.Items, 1)

	byUser, err := f.comments.ListByUser(alice, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byUser.Total)

	c.Content = "really nice shot"
	require.NoError(t, f.comments.Update(c))

	require.NoError(t, f.comments.Delete(c))
	byPhoto, err = f.comments.ListByPhoto(p, 1)
	require.NoError(t, err)
	assert.Empty(t, byPhoto.Items)
}

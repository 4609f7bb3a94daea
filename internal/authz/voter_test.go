package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photo-gallery-api/internal/domain"
)

var (
	admin  = &domain.User{ID: 1, Role: domain.RoleAdmin}
	author = &domain.User{ID: 2, Role: domain.RoleUser}
	other  = &domain.User{ID: 3, Role: domain.RoleUser}
	banned = &domain.User{ID: 4, Role: domain.RoleUser, Banned: true}
)

func TestPhotoVoterPrivate(t *testing.T) {
	private := &domain.Photo{ID: 10, AuthorID: author.ID, Status: domain.StatusPrivate}

	assert.False(t, CanOnPhoto(nil, View, private))
	assert.False(t, CanOnPhoto(other, View, private))
	assert.True(t, CanOnPhoto(author, View, private))
	assert.True(t, CanOnPhoto(admin, View, private))
}

func TestPhotoVoterPublic(t *testing.T) {
	public := &domain.Photo{ID: 11, AuthorID: author.ID, Status: domain.StatusPublic}

	assert.True(t, CanOnPhoto(nil, View, public))
	assert.True(t, CanOnPhoto(other, View, public))

	// anonymous viewers never get past VIEW
	assert.False(t, CanOnPhoto(nil, Edit, public))
	assert.False(t, CanOnPhoto(nil, Delete, public))
}

func TestPhotoVoterEditDelete(t *testing.T) {
	photo := &domain.Photo{ID: 12, AuthorID: author.ID, Status: domain.StatusPublic}

	assert.True(t, CanOnPhoto(author, Edit, photo))
	assert.True(t, CanOnPhoto(author, Delete, photo))
	assert.False(t, CanOnPhoto(other, Edit, photo))
	assert.False(t, CanOnPhoto(other, Delete, photo))
	assert.True(t, CanOnPhoto(admin, Edit, photo))
}

func TestPhotoVoterBannedAuthor(t *testing.T) {
	photo := &domain.Photo{ID: 13, AuthorID: banned.ID, Status: domain.StatusPublic}

	// a banned author may still view but no longer edit or delete
	assert.True(t, CanOnPhoto(banned, View, photo))
	assert.False(t, CanOnPhoto(banned, Edit, photo))
	assert.False(t, CanOnPhoto(banned, Delete, photo))
}

func TestGalleryVoter(t *testing.T) {
	g := &domain.Gallery{ID: 20, Users: []domain.User{{ID: author.ID}}}

	// VIEW is open to everyone
	assert.True(t, CanOnGallery(nil, View, g))
	assert.True(t, CanOnGallery(other, View, g))

	// EDIT/DELETE only for members and admins
	assert.True(t, CanOnGallery(author, Edit, g))
	assert.True(t, CanOnGallery(author, Delete, g))
	assert.False(t, CanOnGallery(other, Edit, g))
	assert.False(t, CanOnGallery(other, Delete, g))
	assert.False(t, CanOnGallery(nil, Edit, g))
	assert.True(t, CanOnGallery(admin, Delete, g))
}

func TestUserVoter(t *testing.T) {
	assert.True(t, CanOnUser(author, View, author))
	assert.True(t, CanOnUser(author, Edit, author))
	assert.True(t, CanOnUser(author, Delete, author))
	assert.False(t, CanOnUser(other, View, author))
	assert.False(t, CanOnUser(other, Edit, author))
	assert.False(t, CanOnUser(nil, View, author))
	assert.True(t, CanOnUser(admin, Edit, author))
}

func TestCommentVoter(t *testing.T) {
	c := &domain.Comment{ID: 30, UserID: author.ID, PhotoID: 10}

	// even VIEW is author-only for non-admins
	assert.True(t, CanOnComment(author, View, c))
	assert.False(t, CanOnComment(other, View, c))
	assert.False(t, CanOnComment(nil, View, c))
	assert.True(t, CanOnComment(author, Edit, c))
	assert.False(t, CanOnComment(other, Delete, c))
	assert.True(t, CanOnComment(admin, Delete, c))
}

func TestUnknownPermissionDenies(t *testing.T) {
	photo := &domain.Photo{ID: 14, AuthorID: author.ID, Status: domain.StatusPublic}

	assert.False(t, CanOnPhoto(author, Permission("PUBLISH"), photo))
	assert.False(t, CanOnGallery(admin, Permission(""), &domain.Gallery{ID: 21}))
	assert.False(t, CanOnUser(admin, Permission("X"), author))
}

func TestNilSubjectDenies(t *testing.T) {
	assert.False(t, CanOnPhoto(admin, View, nil))
	assert.False(t, CanOnGallery(admin, View, nil))
	assert.False(t, CanOnComment(admin, View, nil))
	assert.False(t, CanOnUser(admin, View, nil))
}

// Scenario: gallery "Nature" holds the PUBLIC photo "Sunset" by U1.
// A stranger may view it but not edit; an admin may edit.
func TestPublicPhotoScenario(t *testing.T) {
	u1 := &domain.User{ID: 101, Role: domain.RoleUser}
	u2 := &domain.User{ID: 102, Role: domain.RoleUser}
	u3 := &domain.User{ID: 103, Role: domain.RoleAdmin}
	sunset := &domain.Photo{ID: 7, GalleryID: 1, AuthorID: u1.ID, Status: domain.StatusPublic}

	assert.True(t, CanOnPhoto(u2, View, sunset))
	assert.False(t, CanOnPhoto(u2, Edit, sunset))
	assert.True(t, CanOnPhoto(u3, Edit, sunset))
}

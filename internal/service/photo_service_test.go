package service

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photo-gallery-api/internal/domain"
)

func TestListFiltersByGalleryAndStatus(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g1 := seedGallery(t, f.db, "one", *alice)
	g2 := seedGallery(t, f.db, "two", *alice)
	seedPhoto(t, f.db, g1, alice, "pub-in-one", domain.StatusPublic)
	seedPhoto(t, f.db, g1, alice, "priv-in-one", domain.StatusPrivate)
	seedPhoto(t, f.db, g2, alice, "pub-in-two", domain.StatusPublic)

	page, err := f.photos.List(1, PhotoListInput{GalleryID: &g1.ID, Status: "PUBLIC"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	// full rows, not just ids
	got := page.Items[0]
	assert.Equal(t, "pub-in-one", got.Title)
	assert.Equal(t, "pub-in-one.jpg", got.Filename)
	assert.Equal(t, domain.StatusPublic, got.Status)
	assert.Equal(t, g1.ID, got.GalleryID)
}

func TestListUnresolvableGalleryDegradesToNoFilter(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)
	seedPhoto(t, f.db, g, alice, "a", domain.StatusPublic)
	seedPhoto(t, f.db, g, alice, "b", domain.StatusPublic)

	missing := g.ID + 999
	page, err := f.photos.List(1, PhotoListInput{GalleryID: &missing, Status: "PUBLIC"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total, "stale gallery links list everything instead of erroring")
}

func TestListUnknownStatusDegradesToNoFilter(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)
	seedPhoto(t, f.db, g, alice, "pub", domain.StatusPublic)
	seedPhoto(t, f.db, g, alice, "priv", domain.StatusPrivate)

	page, err := f.photos.List(1, PhotoListInput{Status: "BOGUS"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestListFiltersByTag(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)
	tagged := seedPhoto(t, f.db, g, alice, "tagged", domain.StatusPublic)
	seedPhoto(t, f.db, g, alice, "plain", domain.StatusPublic)

	tag := &domain.Tag{Title: "nature", Slug: "nature"}
	require.NoError(t, f.db.Create(tag).Error)
	require.NoError(t, f.db.Model(tagged).Association("Tags").Append(tag))

	page, err := f.photos.List(1, PhotoListInput{TagID: &tag.ID, Status: "PUBLIC"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, tagged.ID, page.Items[0].ID)
}

func TestSearchAndsAllPatterns(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)

	p := seedPhoto(t, f.db, g, alice, "Sunset over lake", domain.StatusPublic)
	p.Description = "golden hour"
	require.NoError(t, f.db.Save(p).Error)
	other := seedPhoto(t, f.db, g, alice, "Sunset in town", domain.StatusPublic)
	other.Description = "street lights"
	require.NoError(t, f.db.Save(other).Error)

	// both patterns must hit the same row
	page, err := f.photos.Search(1, PhotoSearchInput{
		PhotoListInput: PhotoListInput{Status: "PUBLIC"},
		Title:          "sunset",
		Description:    "golden",
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, p.ID, page.Items[0].ID)

	// title-only matches both
	page, err = f.photos.Search(1, PhotoSearchInput{
		PhotoListInput: PhotoListInput{Status: "PUBLIC"},
		Title:          "SUNSET",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total, "matching is case-insensitive")
}

func TestListPagination(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)
	for i := 0; i < PageSize+2; i++ {
		seedPhoto(t, f.db, g, alice, "photo-"+strings.Repeat("x", i+1), domain.StatusPublic)
	}

	page1, err := f.photos.List(1, PhotoListInput{Status: "PUBLIC"})
	require.NoError(t, err)
	assert.Len(t, page1.Items, PageSize)
	assert.EqualValues(t, PageSize+2, page1.Total)

	page2, err := f.photos.List(2, PhotoListInput{Status: "PUBLIC"})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 2)
}

func TestCreateStoresFileSlugAndTags(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)

	p := &domain.Photo{
		Title:     "My First Upload!",
		Status:    domain.StatusPublic,
		GalleryID: g.ID,
	}
	src := strings.NewReader("fake image bytes")
	require.NoError(t, f.photos.Create(p, src, "original.jpg", []string{"Nature", "nature", " "}, alice))

	assert.Equal(t, "my-first-upload", p.Slug)
	assert.Equal(t, alice.ID, p.AuthorID)
	assert.True(t, strings.HasSuffix(p.Filename, ".jpg"))
	require.Len(t, p.Tags, 1, "blank and duplicate tag titles collapse")

	got, err := f.photos.FindByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Tags, 1)
}

func TestUpdateReplacesFile(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)

	p := &domain.Photo{Title: "Original", Status: domain.StatusPublic, GalleryID: g.ID}
	require.NoError(t, f.photos.Create(p, strings.NewReader("v1"), "a.jpg", nil, alice))
	old := p.Filename
	_, err := os.Stat(f.photos.files.Path(old))
	require.NoError(t, err)

	require.NoError(t, f.photos.Update(p, strings.NewReader("v2"), "b.png", nil))
	assert.NotEqual(t, old, p.Filename)
	assert.True(t, strings.HasSuffix(p.Filename, ".png"))

	_, err = os.Stat(f.photos.files.Path(old))
	assert.True(t, os.IsNotExist(err), "replaced file is removed from disk")
	_, err = os.Stat(f.photos.files.Path(p.Filename))
	require.NoError(t, err)

	got, err := f.photos.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Filename, got.Filename)
}

func TestListByAuthor(t *testing.T) {
	f := newFixtures(t)
	alice := seedUser(t, f.db, "alice", domain.RoleUser)
	bob := seedUser(t, f.db, "bob", domain.RoleUser)
	g := seedGallery(t, f.db, "one", *alice)
	seedPhoto(t, f.db, g, alice, "hers", domain.StatusPublic)
	seedPhoto(t, f.db, g, bob, "his", domain.StatusPublic)

	page, err := f.photos.ListByAuthor(alice, 1, PhotoListInput{Status: "PUBLIC"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "hers", page.Items[0].Title)
}

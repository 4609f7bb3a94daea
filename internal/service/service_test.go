package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/repo"
	"photo-gallery-api/pkg/utils"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would see its own empty memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Avatar{}, &domain.Gallery{},
		&domain.Photo{}, &domain.Tag{}, &domain.Comment{}, &domain.Rating{},
	))
	return db
}

type fixtures struct {
	db        *gorm.DB
	users     *UserService
	photos    *PhotoService
	galleries *GalleryService
	comments  *CommentService
	ratings   *RatingService
	tags      *TagService
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()
	db := testDB(t)

	files, err := NewUploadStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	userRepo := repo.NewUserRepo(db)
	photoRepo := repo.NewPhotoRepo(db)
	galleryRepo := repo.NewGalleryRepo(db)
	tagRepo := repo.NewTagRepo(db)
	commentRepo := repo.NewCommentRepo(db)
	ratingRepo := repo.NewRatingRepo(db)

	tags := NewTagService(tagRepo)
	return fixtures{
		db:        db,
		users:     NewUserService(userRepo),
		photos:    NewPhotoService(photoRepo, galleryRepo, tags, files),
		galleries: NewGalleryService(galleryRepo, photoRepo),
		comments:  NewCommentService(commentRepo),
		ratings:   NewRatingService(ratingRepo, nil),
		tags:      tags,
	}
}

func seedUser(t *testing.T, db *gorm.DB, name string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: utils.HashPassword("secret1"),
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGallery(t *testing.T, db *gorm.DB, title string, members ...domain.User) *domain.Gallery {
	t.Helper()
	g := &domain.Gallery{Title: title, Slug: utils.Slugify(title), Users: members}
	require.NoError(t, db.Create(g).Error)
	return g
}

func seedPhoto(t *testing.T, db *gorm.DB, g *domain.Gallery, author *domain.User, title string, status domain.PhotoStatus) *domain.Photo {
	t.Helper()
	p := &domain.Photo{
		Title:     title,
		Slug:      utils.Slugify(title),
		Filename:  title + ".jpg",
		Status:    status,
		GalleryID: g.ID,
		AuthorID:  author.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

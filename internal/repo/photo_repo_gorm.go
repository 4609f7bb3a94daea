package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type PhotoRepo struct{ db *gorm.DB }

func NewPhotoRepo(db *gorm.DB) *PhotoRepo { return &PhotoRepo{db: db} }

func (r *PhotoRepo) Create(p *domain.Photo) error { return r.db.Create(p).Error }

func (r *PhotoRepo) FindByID(id uint) (*domain.Photo, error) {
	var p domain.Photo
	err := r.db.
		Preload("Gallery.Users").
		Preload("Tags").
		Preload("Author").
		First(&p, "photos.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PhotoRepo) List(f domain.PhotoFilters, offset, limit int) ([]domain.Photo, int64, error) {
	return r.list(r.db.Model(&domain.Photo{}), f, offset, limit)
}

func (r *PhotoRepo) ListByAuthor(authorID uint, f domain.PhotoFilters, offset, limit int) ([]domain.Photo, int64, error) {
	q := r.db.Model(&domain.Photo{}).Where("photos.author_id = ?", authorID)
	return r.list(q, f, offset, limit)
}

func (r *PhotoRepo) list(q *gorm.DB, f domain.PhotoFilters, offset, limit int) ([]domain.Photo, int64, error) {
	q = applyFilters(q, f)

	// count on a fresh session; sharing the statement would leave its
	// Distinct("photos.id") select on the Find below
	var total int64
	if err := q.Session(&gorm.Session{}).Distinct("photos.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var photos []domain.Photo
	err := q.Distinct("photos.*").
		Preload("Gallery").
		Preload("Tags").
		Order("photos.updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

// applyFilters ANDs every present filter onto the query. A nil gallery,
// tag or status contributes nothing; search patterns match
// case-insensitively as substrings.
func applyFilters(q *gorm.DB, f domain.PhotoFilters) *gorm.DB {
	if f.Gallery != nil {
		q = q.Where("photos.gallery_id = ?", f.Gallery.ID)
	}
	if f.Tag != nil {
		q = q.Joins("JOIN photos_tags pt ON pt.photo_id = photos.id").
			Where("pt.tag_id = ?", f.Tag.ID)
	}
	if f.Status != nil {
		q = q.Where("photos.status = ?", string(*f.Status))
	}
	if f.TitlePattern != "" {
		q = q.Where("LOWER(photos.title) LIKE ?", "%"+strings.ToLower(f.TitlePattern)+"%")
	}
	if f.DescriptionPattern != "" {
		q = q.Where("LOWER(photos.description) LIKE ?", "%"+strings.ToLower(f.DescriptionPattern)+"%")
	}
	return q
}

func (r *PhotoRepo) Update(p *domain.Photo) error {
	return r.db.Omit("Tags", "Gallery", "Author", "Comments").Save(p).Error
}

func (r *PhotoRepo) ReplaceTags(p *domain.Photo, tags []domain.Tag) error {
	return r.db.Model(p).Association("Tags").Replace(tags)
}

func (r *PhotoRepo) Delete(p *domain.Photo) error {
	// join rows and comments cascade with the photo
	return r.db.Select("Comments", "Tags").Delete(p).Error
}

func (r *PhotoRepo) CountByGallery(galleryID uint) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Photo{}).Where("gallery_id = ?", galleryID).Count(&n).Error
	return n, err
}

package repo

import (
	"errors"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type TagRepo struct{ db *gorm.DB }

func NewTagRepo(db *gorm.DB) *TagRepo { return &TagRepo{db: db} }

func (r *TagRepo) Create(t *domain.Tag) error { return r.db.Create(t).Error }

func (r *TagRepo) FindByID(id uint) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *TagRepo) FindByTitle(title string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.First(&t, "title = ?", title).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *TagRepo) List(offset, limit int) ([]domain.Tag, int64, error) {
	tx := r.db.Model(&domain.Tag{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tags []domain.Tag
	if err := tx.Offset(offset).Limit(limit).Order("title asc").Find(&tags).Error; err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

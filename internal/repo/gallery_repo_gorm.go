package repo

import (
	"errors"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type GalleryRepo struct{ db *gorm.DB }

func NewGalleryRepo(db *gorm.DB) *GalleryRepo { return &GalleryRepo{db: db} }

func (r *GalleryRepo) Create(g *domain.Gallery, members []domain.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Users").Create(g).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		return tx.Model(g).Association("Users").Append(members)
	})
}

func (r *GalleryRepo) FindByID(id uint) (*domain.Gallery, error) {
	var g domain.Gallery
	err := r.db.Preload("Users").First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &g, err
}

func (r *GalleryRepo) List(offset, limit int) ([]domain.Gallery, int64, error) {
	tx := r.db.Model(&domain.Gallery{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var gs []domain.Gallery
	if err := tx.Offset(offset).Limit(limit).Order("updated_at desc").Find(&gs).Error; err != nil {
		return nil, 0, err
	}
	return gs, total, nil
}

func (r *GalleryRepo) Update(g *domain.Gallery) error {
	return r.db.Omit("Users").Save(g).Error
}

// DeleteIfEmpty checks the photo count and deletes inside one transaction
// so the gallery cannot gain photos between the check and the delete.
func (r *GalleryRepo) DeleteIfEmpty(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.Photo{}).Where("gallery_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		res := tx.Select("Users").Delete(&domain.Gallery{ID: id})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *GalleryRepo) AddMember(g *domain.Gallery, u *domain.User) error {
	return r.db.Model(g).Association("Users").Append(u)
}

package repo

import (
	"errors"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type AvatarRepo struct{ db *gorm.DB }

func NewAvatarRepo(db *gorm.DB) *AvatarRepo { return &AvatarRepo{db: db} }

func (r *AvatarRepo) Create(a *domain.Avatar) error { return r.db.Create(a).Error }

func (r *AvatarRepo) FindByUser(userID uint) (*domain.Avatar, error) {
	var a domain.Avatar
	err := r.db.First(&a, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AvatarRepo) Update(a *domain.Avatar) error { return r.db.Save(a).Error }

func (r *AvatarRepo) Delete(a *domain.Avatar) error { return r.db.Delete(a).Error }

package repo

import (
	"errors"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type CommentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(c *domain.Comment) error { return r.db.Create(c).Error }

func (r *CommentRepo) FindByID(id uint) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CommentRepo) ListByPhoto(photoID uint, offset, limit int) ([]domain.Comment, int64, error) {
	tx := r.db.Model(&domain.Comment{}).Where("photo_id = ?", photoID)
	return r.page(tx, offset, limit)
}

func (r *CommentRepo) ListByUser(userID uint, offset, limit int) ([]domain.Comment, int64, error) {
	tx := r.db.Model(&domain.Comment{}).Where("user_id = ?", userID)
	return r.page(tx, offset, limit)
}

func (r *CommentRepo) page(tx *gorm.DB, offset, limit int) ([]domain.Comment, int64, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cs []domain.Comment
	if err := tx.Preload("User").Offset(offset).Limit(limit).Order("created_at desc").Find(&cs).Error; err != nil {
		return nil, 0, err
	}
	return cs, total, nil
}

func (r *CommentRepo) Update(c *domain.Comment) error { return r.db.Save(c).Error }

func (r *CommentRepo) Delete(c *domain.Comment) error { return r.db.Delete(c).Error }

package repo

import (
	"errors"

	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
)

type RatingRepo struct{ db *gorm.DB }

func NewRatingRepo(db *gorm.DB) *RatingRepo { return &RatingRepo{db: db} }

func (r *RatingRepo) FindByID(id uint) (*domain.Rating, error) {
	var rt domain.Rating
	err := r.db.First(&rt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rt, err
}

func (r *RatingRepo) FindByUserAndPhoto(userID, photoID uint) (*domain.Rating, error) {
	var rt domain.Rating
	err := r.db.First(&rt, "user_id = ? AND photo_id = ?", userID, photoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rt, err
}

// Upsert keeps at most one rating per (user, photo): any prior row for
// the pair is removed before the insert, both inside one transaction.
// The table carries no composite unique index, so the transaction is the
// only thing standing between a concurrent double-submit and duplicates.
func (r *RatingRepo) Upsert(rt *domain.Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND photo_id = ?", rt.UserID, rt.PhotoID).
			Delete(&domain.Rating{}).Error; err != nil {
			return err
		}
		return tx.Create(rt).Error
	})
}

func (r *RatingRepo) ListByPhoto(photoID uint, offset, limit int) ([]domain.Rating, int64, error) {
	tx := r.db.Model(&domain.Rating{}).Where("photo_id = ?", photoID)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rs []domain.Rating
	if err := tx.Offset(offset).Limit(limit).Order("value desc").Find(&rs).Error; err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

// AverageByPhoto returns 0 for a photo with no ratings.
func (r *RatingRepo) AverageByPhoto(photoID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&domain.Rating{}).
		Select("AVG(value)").
		Where("photo_id = ?", photoID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *RatingRepo) TopPhotos(offset, limit int) ([]domain.TopPhoto, int64, error) {
	base := r.db.Model(&domain.Rating{}).
		Select("photos.id AS photo_id, photos.title, photos.filename, AVG(rating.value) AS average").
		Joins("JOIN photos ON photos.id = rating.photo_id").
		Group("photos.id, photos.title, photos.filename")

	var total int64
	if err := r.db.Model(&domain.Rating{}).Distinct("photo_id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.TopPhoto
	if err := base.Order("average DESC").Offset(offset).Limit(limit).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *RatingRepo) Delete(rt *domain.Rating) error { return r.db.Delete(rt).Error }

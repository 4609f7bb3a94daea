package domain

// Rating values are clamped to [0,5] by request validation, not by the
// schema. The table carries no (user_id, photo_id) unique index; the
// one-rating-per-pair rule lives in the repo upsert.
type Rating struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Value float64 `gorm:"not null" json:"value"`

	UserID  uint   `gorm:"not null;index" json:"userId"`
	User    *User  `json:"-"`
	PhotoID uint   `gorm:"not null;index" json:"photoId"`
	Photo   *Photo `json:"-"`
}

func (Rating) TableName() string { return "rating" }

// TopPhoto is a row of the by-average-rating listing.
type TopPhoto struct {
	PhotoID  uint    `json:"photoId"`
	Title    string  `json:"title"`
	Filename string  `json:"filename"`
	Average  float64 `json:"average"`
}

type RatingRepository interface {
	FindByID(id uint) (*Rating, error)
	FindByUserAndPhoto(userID, photoID uint) (*Rating, error)
	// Upsert deletes any prior rating for the (user, photo) pair and inserts
	// the new one inside a single transaction.
	Upsert(r *Rating) error
	ListByPhoto(photoID uint, offset, limit int) ([]Rating, int64, error)
	AverageByPhoto(photoID uint) (float64, error)
	TopPhotos(offset, limit int) ([]TopPhoto, int64, error)
	Delete(r *Rating) error
}

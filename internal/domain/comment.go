package domain

import "time"

const CommentMaxLen = 2000

type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"size:2000;not null" json:"content"`

	PhotoID uint   `gorm:"not null;index" json:"photoId"`
	Photo   *Photo `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	User    *User  `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string { return "comments" }

type CommentRepository interface {
	Create(c *Comment) error
	FindByID(id uint) (*Comment, error)
	ListByPhoto(photoID uint, offset, limit int) ([]Comment, int64, error)
	ListByUser(userID uint, offset, limit int) ([]Comment, int64, error)
	Update(c *Comment) error
	Delete(c *Comment) error
}

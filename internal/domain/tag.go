package domain

import "time"

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"uniqueIndex:uq_tags_title;size:64;not null" json:"title"`
	Slug  string `gorm:"size:64;not null" json:"slug"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

type TagRepository interface {
	Create(t *Tag) error
	FindByID(id uint) (*Tag, error)
	FindByTitle(title string) (*Tag, error)
	List(offset, limit int) ([]Tag, int64, error)
}

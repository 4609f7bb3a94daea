package domain

import "time"

type PhotoStatus string

const (
	StatusPublic  PhotoStatus = "PUBLIC"
	StatusPrivate PhotoStatus = "PRIVATE"
)

// ParsePhotoStatus returns nil for codes outside the enum; listing queries
// treat that as "no status filter" rather than an error.
func ParsePhotoStatus(code string) *PhotoStatus {
	switch PhotoStatus(code) {
	case StatusPublic, StatusPrivate:
		s := PhotoStatus(code)
		return &s
	}
	return nil
}

type Photo struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Slug        string      `gorm:"size:255" json:"slug"`
	Description string      `gorm:"size:255" json:"description"`
	Filename    string      `gorm:"size:191;not null" json:"filename"`
	Status      PhotoStatus `gorm:"size:16;not null;default:PUBLIC" json:"status"`

	GalleryID uint     `gorm:"not null;index" json:"galleryId"`
	Gallery   *Gallery `json:"gallery,omitempty"`
	AuthorID  uint     `gorm:"not null;index" json:"authorId"`
	Author    *User    `json:"author,omitempty"`

	Tags     []Tag     `gorm:"many2many:photos_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Photo) TableName() string { return "photos" }

// PhotoFilters is the resolved filter set applied to photo listings.
// Nil members mean "no constraint"; all present members AND together.
type PhotoFilters struct {
	Gallery            *Gallery
	Tag                *Tag
	Status             *PhotoStatus
	TitlePattern       string
	DescriptionPattern string
}

type PhotoRepository interface {
	Create(p *Photo) error
	FindByID(id uint) (*Photo, error)
	List(f PhotoFilters, offset, limit int) ([]Photo, int64, error)
	ListByAuthor(authorID uint, f PhotoFilters, offset, limit int) ([]Photo, int64, error)
	Update(p *Photo) error
	ReplaceTags(p *Photo, tags []Tag) error
	Delete(p *Photo) error
	CountByGallery(galleryID uint) (int64, error)
}

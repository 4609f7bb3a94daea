package domain

import "time"

type Gallery struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:64;not null" json:"title"`
	Slug  string `gorm:"size:64" json:"slug"`

	// Users who may edit the gallery. The join rows cascade with either side.
	Users []User `gorm:"many2many:galleries_users;constraint:OnDelete:CASCADE" json:"users,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Gallery) TableName() string { return "galleries" }

// HasMember reports whether the user is in the gallery's edit set.
// Callers must have loaded the Users association.
func (g *Gallery) HasMember(u *User) bool {
	if u == nil {
		return false
	}
	for i := range g.Users {
		if g.Users[i].ID == u.ID {
			return true
		}
	}
	return false
}

type GalleryRepository interface {
	Create(g *Gallery, members []User) error
	FindByID(id uint) (*Gallery, error)
	List(offset, limit int) ([]Gallery, int64, error)
	Update(g *Gallery) error
	// DeleteIfEmpty removes the gallery only while it owns no photos; the
	// count and the delete run in one transaction. Returns false when the
	// gallery still holds photos.
	DeleteIfEmpty(id uint) (bool, error)
	AddMember(g *Gallery, u *User) error
}

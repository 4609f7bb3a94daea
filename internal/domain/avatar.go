package domain

// Avatar is 1:1 with its user; the row and the file on disk live and die
// together (see service.AvatarService).
type Avatar struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Filename string `gorm:"uniqueIndex:uq_avatars_filename;size:191;not null" json:"filename"`
}

func (Avatar) TableName() string { return "avatars" }

type AvatarRepository interface {
	Create(a *Avatar) error
	FindByUser(userID uint) (*Avatar, error)
	Update(a *Avatar) error
	Delete(a *Avatar) error
}

package domain

import "time"

// Role is a closed set; the banned state is a separate column so an
// account keeps its role while suspended.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:180;not null" json:"name"`
	Email        string `gorm:"uniqueIndex:email_idx;size:180;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"size:16;not null;default:user" json:"role"`
	Banned       bool   `gorm:"not null;default:false" json:"banned"`

	Avatar *Avatar `gorm:"foreignKey:UserID" json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	List(offset, limit int) ([]User, int64, error)
	Update(u *User) error
	UpdatePassword(id uint, hash string) error
	CountAdmins() (int64, error)
}

package service

import (
	"strings"

	"photo-gallery-api/internal/domain"
	"photo-gallery-api/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) FindByID(id uint) (*domain.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) List(page int) (Page[domain.User], error) {
	items, total, err := s.users.List(Offset(page), PageSize)
	if err != nil {
		return Page[domain.User]{}, err
	}
	return NewPage(items, total, page), nil
}

// Register creates a user account with a hashed password. A duplicate
// email surfaces as ErrEmailTaken.
func (s *UserService) Register(name, email, password string) (*domain.User, error) {
	u := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Authenticate checks the credentials and rejects banned accounts.
func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrBadCredentials
	}
	if u.Banned {
		return nil, ErrBadCredentials
	}
	return u, nil
}

func (s *UserService) UpdateProfile(u *domain.User, name, email string) error {
	u.Name = strings.TrimSpace(name)
	u.Email = strings.TrimSpace(email)
	if err := s.users.Update(u); err != nil {
		if isDupKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// ChangePassword verifies the current password before hashing the new one.
func (s *UserService) ChangePassword(u *domain.User, current, next string) error {
	if !utils.CheckPassword(current, u.PasswordHash) {
		return ErrBadCredentials
	}
	return s.users.UpdatePassword(u.ID, utils.HashPassword(next))
}

// AdminUpdate applies role and ban changes with two guards: the last
// admin cannot be demoted, and an account cannot be banned while it
// holds the admin role.
func (s *UserService) AdminUpdate(u *domain.User, role domain.Role, banned bool) error {
	if u.Role == domain.RoleAdmin && role != domain.RoleAdmin {
		n, err := s.users.CountAdmins()
		if err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastAdmin
		}
	}
	if banned && role == domain.RoleAdmin {
		return ErrBanAdmin
	}
	u.Role = role
	u.Banned = banned
	return s.users.Update(u)
}

func isDupKey(err error) bool {
	// string match instead of gorm.ErrDuplicatedKey; drivers differ
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}

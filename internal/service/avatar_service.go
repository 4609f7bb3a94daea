package service

import (
	"io"

	"photo-gallery-api/internal/domain"
)

// AvatarService couples the avatar row with its file on disk: creating
// writes both, deleting removes both, updating swaps the file first.
type AvatarService struct {
	avatars domain.AvatarRepository
	files   *UploadStore
}

func NewAvatarService(avatars domain.AvatarRepository, files *UploadStore) *AvatarService {
	return &AvatarService{avatars: avatars, files: files}
}

func (s *AvatarService) FindByUser(user *domain.User) (*domain.Avatar, error) {
	return s.avatars.FindByUser(user.ID)
}

func (s *AvatarService) Create(file io.Reader, originalName string, user *domain.User) (*domain.Avatar, error) {
	filename, err := s.files.Save(file, originalName)
	if err != nil {
		return nil, err
	}
	a := &domain.Avatar{UserID: user.ID, Filename: filename}
	if err := s.avatars.Create(a); err != nil {
		s.files.Remove(filename)
		return nil, err
	}
	return a, nil
}

// Update removes the old file (best-effort) and writes the replacement.
func (s *AvatarService) Update(a *domain.Avatar, file io.Reader, originalName string) error {
	old := a.Filename
	filename, err := s.files.Save(file, originalName)
	if err != nil {
		return err
	}
	a.Filename = filename
	if err := s.avatars.Update(a); err != nil {
		s.files.Remove(filename)
		return err
	}
	s.files.Remove(old)
	return nil
}

func (s *AvatarService) Delete(a *domain.Avatar) error {
	s.files.Remove(a.Filename)
	return s.avatars.Delete(a)
}

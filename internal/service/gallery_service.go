package service

import (
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/pkg/utils"
)

type GalleryService struct {
	galleries domain.GalleryRepository
	photos    domain.PhotoRepository
}

func NewGalleryService(galleries domain.GalleryRepository, photos domain.PhotoRepository) *GalleryService {
	return &GalleryService{galleries: galleries, photos: photos}
}

func (s *GalleryService) FindByID(id uint) (*domain.Gallery, error) {
	return s.galleries.FindByID(id)
}

func (s *GalleryService) List(page int) (Page[domain.Gallery], error) {
	items, total, err := s.galleries.List(Offset(page), PageSize)
	if err != nil {
		return Page[domain.Gallery]{}, err
	}
	return NewPage(items, total, page), nil
}

// Create slugs the title and makes the creator a member of the edit set.
func (s *GalleryService) Create(g *domain.Gallery, creator *domain.User) error {
	g.Slug = utils.Slugify(g.Title)
	return s.galleries.Create(g, []domain.User{*creator})
}

func (s *GalleryService) Update(g *domain.Gallery) error {
	g.Slug = utils.Slugify(g.Title)
	return s.galleries.Update(g)
}

// CanBeDeleted reports whether the gallery owns no photos. The guard is
// advisory; Delete re-checks inside a transaction.
func (s *GalleryService) CanBeDeleted(g *domain.Gallery) bool {
	n, err := s.photos.CountByGallery(g.ID)
	if err != nil {
		return false
	}
	return n == 0
}

// Delete removes the gallery only while it is empty.
func (s *GalleryService) Delete(g *domain.Gallery) error {
	deleted, err := s.galleries.DeleteIfEmpty(g.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGalleryNotEmpty
	}
	return nil
}

func (s *GalleryService) AddMember(g *domain.Gallery, u *domain.User) error {
	if g.HasMember(u) {
		return nil
	}
	return s.galleries.AddMember(g, u)
}

package service

import (
	"io"

	"photo-gallery-api/internal/domain"
	"photo-gallery-api/pkg/utils"
)

type PhotoService struct {
	photos    domain.PhotoRepository
	galleries domain.GalleryRepository
	tags      *TagService
	files     *UploadStore
}

func NewPhotoService(photos domain.PhotoRepository, galleries domain.GalleryRepository, tags *TagService, files *UploadStore) *PhotoService {
	return &PhotoService{photos: photos, galleries: galleries, tags: tags, files: files}
}

func (s *PhotoService) FindByID(id uint) (*domain.Photo, error) {
	return s.photos.FindByID(id)
}

func (s *PhotoService) List(page int, in PhotoListInput) (Page[domain.Photo], error) {
	f, err := resolveFilters(in, s.galleries, s.tags.tags)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	items, total, err := s.photos.List(f, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	return NewPage(items, total, page), nil
}

func (s *PhotoService) Search(page int, in PhotoSearchInput) (Page[domain.Photo], error) {
	f, err := resolveFilters(in.PhotoListInput, s.galleries, s.tags.tags)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	f.TitlePattern = in.Title
	f.DescriptionPattern = in.Description
	items, total, err := s.photos.List(f, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	return NewPage(items, total, page), nil
}

func (s *PhotoService) ListByAuthor(author *domain.User, page int, in PhotoListInput) (Page[domain.Photo], error) {
	f, err := resolveFilters(in, s.galleries, s.tags.tags)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	items, total, err := s.photos.ListByAuthor(author.ID, f, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Photo]{}, err
	}
	return NewPage(items, total, page), nil
}

// Create stores the uploaded file, slugs the title, resolves tag titles
// and persists the photo for the given author.
func (s *PhotoService) Create(p *domain.Photo, file io.Reader, originalName string, tagTitles []string, author *domain.User) error {
	filename, err := s.files.Save(file, originalName)
	if err != nil {
		return err
	}
	p.AuthorID = author.ID
	p.Filename = filename
	p.Slug = utils.Slugify(p.Title)

	tags, err := s.tags.EnsureByTitles(tagTitles)
	if err != nil {
		s.files.Remove(filename)
		return err
	}
	p.Tags = tags

	if err := s.photos.Create(p); err != nil {
		s.files.Remove(filename)
		return err
	}
	return nil
}

// Update persists metadata edits. When file is non-nil the old file is
// removed (best-effort) and replaced before the row is saved.
func (s *PhotoService) Update(p *domain.Photo, file io.Reader, originalName string, tagTitles []string) error {
	if file != nil {
		old := p.Filename
		filename, err := s.files.Save(file, originalName)
		if err != nil {
			return err
		}
		s.files.Remove(old)
		p.Filename = filename
	}
	p.Slug = utils.Slugify(p.Title)

	if tagTitles != nil {
		tags, err := s.tags.EnsureByTitles(tagTitles)
		if err != nil {
			return err
		}
		if err := s.photos.ReplaceTags(p, tags); err != nil {
			return err
		}
	}
	return s.photos.Update(p)
}

// Delete removes the backing file (best-effort) and the row; comments
// and tag links cascade.
func (s *PhotoService) Delete(p *domain.Photo) error {
	s.files.Remove(p.Filename)
	return s.photos.Delete(p)
}

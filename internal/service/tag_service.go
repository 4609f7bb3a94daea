package service

import (
	"strings"

	"photo-gallery-api/internal/domain"
	"photo-gallery-api/pkg/utils"
)

type TagService struct {
	tags domain.TagRepository
}

func NewTagService(tags domain.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) FindByID(id uint) (*domain.Tag, error) {
	return s.tags.FindByID(id)
}

func (s *TagService) List(page int) (Page[domain.Tag], error) {
	items, total, err := s.tags.List(Offset(page), PageSize)
	if err != nil {
		return Page[domain.Tag]{}, err
	}
	return NewPage(items, total, page), nil
}

// EnsureByTitles resolves each title to an existing tag or creates one,
// skipping blanks and duplicates within the input.
func (s *TagService) EnsureByTitles(titles []string) ([]domain.Tag, error) {
	seen := map[string]struct{}{}
	out := make([]domain.Tag, 0, len(titles))
	for _, raw := range titles {
		title := strings.TrimSpace(raw)
		if title == "" {
			continue
		}
		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		t, err := s.tags.FindByTitle(title)
		if err != nil {
			return nil, err
		}
		if t == nil {
			t = &domain.Tag{Title: title, Slug: utils.Slugify(title)}
			if err := s.tags.Create(t); err != nil {
				return nil, err
			}
		}
		out = append(out, *t)
	}
	return out, nil
}

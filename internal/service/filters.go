package service

import "photo-gallery-api/internal/domain"

// PageSize is the fixed page size of every paginated listing.
const PageSize = 10

// Offset converts a 1-based page number to an offset.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// PhotoListInput carries the raw, loosely-typed listing parameters as
// they arrive from the query string.
type PhotoListInput struct {
	GalleryID *uint  `form:"galleryId"`
	TagID     *uint  `form:"tagId"`
	Status    string `form:"status,default=PUBLIC"`
}

// PhotoSearchInput adds the free-text patterns of the search page.
type PhotoSearchInput struct {
	PhotoListInput
	Title       string `form:"title"`
	Description string `form:"description"`
}

// Page is the envelope every listing returns.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func NewPage[T any](items []T, total int64, page int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: page, Size: PageSize}
}

// resolveFilters turns raw ids into entities. Unresolvable ids and
// unknown status codes degrade to "no filter" so listing pages stay
// usable behind stale links.
func resolveFilters(in PhotoListInput, galleries domain.GalleryRepository, tags domain.TagRepository) (domain.PhotoFilters, error) {
	var f domain.PhotoFilters
	if in.GalleryID != nil {
		g, err := galleries.FindByID(*in.GalleryID)
		if err != nil {
			return f, err
		}
		f.Gallery = g
	}
	if in.TagID != nil {
		t, err := tags.FindByID(*in.TagID)
		if err != nil {
			return f, err
		}
		f.Tag = t
	}
	f.Status = domain.ParsePhotoStatus(in.Status)
	return f, nil
}

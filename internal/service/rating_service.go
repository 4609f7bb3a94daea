package service

import (
	"context"
	"fmt"
	"time"

	"photo-gallery-api/internal/core/cache"
	"photo-gallery-api/internal/domain"
)

const (
	avgRatingTTL = 30 * time.Second
	topPhotosTTL = time.Minute
)

type RatingService struct {
	ratings domain.RatingRepository
	cache   *cache.Cache // nil disables caching
}

func NewRatingService(ratings domain.RatingRepository, c *cache.Cache) *RatingService {
	return &RatingService{ratings: ratings, cache: c}
}

func (s *RatingService) FindByID(id uint) (*domain.Rating, error) {
	return s.ratings.FindByID(id)
}

// Rate records the user's rating for the photo, replacing any earlier
// one for the same pair, and drops the cached average.
func (s *RatingService) Rate(ctx context.Context, user *domain.User, photo *domain.Photo, value float64) (*domain.Rating, error) {
	r := &domain.Rating{UserID: user.ID, PhotoID: photo.ID, Value: value}
	if err := s.ratings.Upsert(r); err != nil {
		return nil, err
	}
	s.invalidate(ctx, photo.ID)
	return r, nil
}

func (s *RatingService) ListByPhoto(photo *domain.Photo, page int) (Page[domain.Rating], error) {
	items, total, err := s.ratings.ListByPhoto(photo.ID, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Rating]{}, err
	}
	return NewPage(items, total, page), nil
}

// AverageByPhoto serves the per-photo average through the cache.
func (s *RatingService) AverageByPhoto(ctx context.Context, photo *domain.Photo) (float64, error) {
	if s.cache == nil {
		return s.ratings.AverageByPhoto(photo.ID)
	}
	avg, err := cache.GetOrLoadJSON[float64](s.cache, ctx, avgKey(photo.ID), avgRatingTTL,
		func(context.Context) (*float64, error) {
			v, e := s.ratings.AverageByPhoto(photo.ID)
			if e != nil {
				return nil, e
			}
			return &v, nil
		})
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// TopPhotos lists photos ordered by average rating, cached per page.
func (s *RatingService) TopPhotos(ctx context.Context, page int) (Page[domain.TopPhoto], error) {
	load := func(context.Context) (*Page[domain.TopPhoto], error) {
		items, total, err := s.ratings.TopPhotos(Offset(page), PageSize)
		if err != nil {
			return nil, err
		}
		p := NewPage(items, total, page)
		return &p, nil
	}
	if s.cache == nil {
		p, err := load(ctx)
		if err != nil {
			return Page[domain.TopPhoto]{}, err
		}
		return *p, nil
	}
	p, err := cache.GetOrLoadJSON[Page[domain.TopPhoto]](s.cache, ctx, topKey(page), topPhotosTTL, load)
	if err != nil || p == nil {
		return Page[domain.TopPhoto]{}, err
	}
	return *p, nil
}

func (s *RatingService) Delete(ctx context.Context, r *domain.Rating) error {
	if err := s.ratings.Delete(r); err != nil {
		return err
	}
	s.invalidate(ctx, r.PhotoID)
	return nil
}

func (s *RatingService) invalidate(ctx context.Context, photoID uint) {
	if s.cache == nil {
		return
	}
	// top pages expire on their own TTL
	s.cache.Invalidate(ctx, avgKey(photoID))
}

func avgKey(photoID uint) string { return fmt.Sprintf("rating:avg:%d", photoID) }
func topKey(page int) string     { return fmt.Sprintf("rating:top:%d", page) }

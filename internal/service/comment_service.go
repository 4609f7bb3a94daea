package service

import "photo-gallery-api/internal/domain"

type CommentService struct {
	comments domain.CommentRepository
}

func NewCommentService(comments domain.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) FindByID(id uint) (*domain.Comment, error) {
	return s.comments.FindByID(id)
}

func (s *CommentService) ListByPhoto(photo *domain.Photo, page int) (Page[domain.Comment], error) {
	items, total, err := s.comments.ListByPhoto(photo.ID, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Comment]{}, err
	}
	return NewPage(items, total, page), nil
}

func (s *CommentService) ListByUser(user *domain.User, page int) (Page[domain.Comment], error) {
	items, total, err := s.comments.ListByUser(user.ID, Offset(page), PageSize)
	if err != nil {
		return Page[domain.Comment]{}, err
	}
	return NewPage(items, total, page), nil
}

func (s *CommentService) Create(c *domain.Comment, author *domain.User, photo *domain.Photo) error {
	c.UserID = author.ID
	c.PhotoID = photo.ID
	return s.comments.Create(c)
}

func (s *CommentService) Update(c *domain.Comment) error {
	return s.comments.Update(c)
}

func (s *CommentService) Delete(c *domain.Comment) error {
	return s.comments.Delete(c)
}

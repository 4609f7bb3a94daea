package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/authz"
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/service"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

func mountPhotoActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	// --- listings ---

	httpez.Register[service.PhotoListInput, service.Page[domain.Photo]](ez, d.DB,
		httpez.Action[service.PhotoListInput, service.Page[domain.Photo]]{
			Method: http.MethodGet,
			Path:   "/photos",
			Binder: httpez.BindQuery,
			Handler: func(c *gin.Context, _ *gorm.DB, in *service.PhotoListInput) (service.Page[domain.Photo], error) {
				return d.Photos.List(pageParam(c), *in)
			},
		})

	httpez.Register[service.PhotoSearchInput, service.Page[domain.Photo]](ez, d.DB,
		httpez.Action[service.PhotoSearchInput, service.Page[domain.Photo]]{
			Method: http.MethodGet,
			Path:   "/photos/search",
			Binder: httpez.BindQuery,
			Handler: func(c *gin.Context, _ *gorm.DB, in *service.PhotoSearchInput) (service.Page[domain.Photo], error) {
				return d.Photos.Search(pageParam(c), *in)
			},
		})

	httpez.Register[struct{}, service.Page[domain.TopPhoto]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.TopPhoto]]{
			Method: http.MethodGet,
			Path:   "/photos/top",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.TopPhoto], error) {
				return d.Ratings.TopPhotos(c, pageParam(c))
			},
		})

	httpez.Register[struct{}, service.Page[domain.Tag]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.Tag]]{
			Method: http.MethodGet,
			Path:   "/tags",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.Tag], error) {
				return d.Tags.List(pageParam(c))
			},
		})

	// --- single photo ---

	type photoOut struct {
		Photo    *domain.Photo               `json:"photo"`
		Comments service.Page[domain.Comment] `json:"comments"`
		Rating   float64                     `json:"rating"`
	}
	httpez.Register[struct{}, photoOut](ez, d.DB, httpez.Action[struct{}, photoOut]{
		Method: http.MethodGet,
		Path:   "/photos/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (photoOut, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return photoOut{}, err
			}
			if !authz.CanOnPhoto(actor, authz.View, photo) {
				return photoOut{}, httpez.Forbidden("forbidden")
			}
			comments, err := d.Comments.ListByPhoto(photo, pageParam(c))
			if err != nil {
				return photoOut{}, svcErr(err)
			}
			avg, err := d.Ratings.AverageByPhoto(c, photo)
			if err != nil {
				return photoOut{}, svcErr(err)
			}
			return photoOut{Photo: photo, Comments: comments, Rating: avg}, nil
		},
	})

	// --- create (multipart) ---

	httpez.Register[struct{}, *domain.Photo](ez, d.DB, httpez.Action[struct{}, *domain.Photo]{
		Method: http.MethodPost,
		Path:   "/photos",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Photo, error) {
			actor, err := d.requireActor(c)
			if err != nil {
				return nil, err
			}

			galleryID, err := formUint(c, "galleryId")
			if err != nil {
				return nil, err
			}
			gallery, err := d.Galleries.FindByID(galleryID)
			if err != nil {
				return nil, svcErr(err)
			}
			if gallery == nil {
				return nil, httpez.NotFound("gallery not found")
			}
			// posting into a gallery requires edit rights on it
			if !authz.CanOnGallery(actor, authz.Edit, gallery) {
				return nil, httpez.Forbidden("not a member of this gallery")
			}

			title := strings.TrimSpace(c.PostForm("title"))
			if title == "" {
				return nil, httpez.BadRequest("title is required")
			}
			status := domain.StatusPublic
			if s := domain.ParsePhotoStatus(c.PostForm("status")); s != nil {
				status = *s
			}

			fh, err := c.FormFile("file")
			if err != nil {
				return nil, httpez.BadRequest("file is required")
			}
			f, err := fh.Open()
			if err != nil {
				return nil, httpez.BadRequest("unreadable file")
			}
			defer f.Close()

			photo := &domain.Photo{
				Title:       title,
				Description: c.PostForm("description"),
				Status:      status,
				GalleryID:   gallery.ID,
			}
			if err := d.Photos.Create(photo, f, fh.Filename, splitTags(c.PostForm("tags")), actor); err != nil {
				return nil, svcErr(err)
			}
			return photo, nil
		},
	})

	// --- edit ---

	type photoEditIn struct {
		Title       string  `json:"title"       binding:"required,max=255"`
		Description string  `json:"description" binding:"max=255"`
		Status      string  `json:"status"`
		GalleryID   *uint   `json:"galleryId"`
		Tags        []string `json:"tags"`
	}
	httpez.Register[photoEditIn, *domain.Photo](ez, d.DB, httpez.Action[photoEditIn, *domain.Photo]{
		Method: http.MethodPut,
		Path:   "/photos/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *photoEditIn) (*domain.Photo, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnPhoto(actor, authz.Edit, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			if in.GalleryID != nil && *in.GalleryID != photo.GalleryID {
				gallery, err := d.Galleries.FindByID(*in.GalleryID)
				if err != nil {
					return nil, svcErr(err)
				}
				if gallery == nil {
					return nil, httpez.NotFound("gallery not found")
				}
				if !authz.CanOnGallery(actor, authz.Edit, gallery) {
					return nil, httpez.Forbidden("not a member of this gallery")
				}
				photo.GalleryID = gallery.ID
			}
			photo.Title = in.Title
			photo.Description = in.Description
			if s := domain.ParsePhotoStatus(in.Status); s != nil {
				photo.Status = *s
			}
			if err := d.Photos.Update(photo, nil, "", in.Tags); err != nil {
				return nil, svcErr(err)
			}
			return photo, nil
		},
	})

	// replace the image itself, metadata untouched
	httpez.Register[struct{}, *domain.Photo](ez, d.DB, httpez.Action[struct{}, *domain.Photo]{
		Method: http.MethodPut,
		Path:   "/photos/:id/file",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Photo, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnPhoto(actor, authz.Edit, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			fh, err := c.FormFile("file")
			if err != nil {
				return nil, httpez.BadRequest("file is required")
			}
			f, err := fh.Open()
			if err != nil {
				return nil, httpez.BadRequest("unreadable file")
			}
			defer f.Close()
			if err := d.Photos.Update(photo, f, fh.Filename, nil); err != nil {
				return nil, svcErr(err)
			}
			return photo, nil
		},
	})

	// --- delete ---

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/photos/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnPhoto(actor, authz.Delete, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Photos.Delete(photo); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": photo.ID}, nil
		},
	})

	// --- comments under a photo ---

	httpez.Register[struct{}, service.Page[domain.Comment]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.Comment]]{
			Method: http.MethodGet,
			Path:   "/photos/:id/comments",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.Comment], error) {
				photo, actor, err := d.loadPhoto(c)
				if err != nil {
					return service.Page[domain.Comment]{}, err
				}
				if !authz.CanOnPhoto(actor, authz.View, photo) {
					return service.Page[domain.Comment]{}, httpez.Forbidden("forbidden")
				}
				return d.Comments.ListByPhoto(photo, pageParam(c))
			},
		})

	type commentIn struct {
		Content string `json:"content" binding:"required,max=2000"`
	}
	httpez.Register[commentIn, *domain.Comment](ez, d.DB, httpez.Action[commentIn, *domain.Comment]{
		Method: http.MethodPost,
		Path:   "/photos/:id/comments",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *commentIn) (*domain.Comment, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if actor == nil {
				return nil, httpez.Unauthorized("unauthorized")
			}
			if !authz.CanOnPhoto(actor, authz.View, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			comment := &domain.Comment{Content: in.Content}
			if err := d.Comments.Create(comment, actor, photo); err != nil {
				return nil, svcErr(err)
			}
			return comment, nil
		},
	})

	// --- ratings ---

	type ratingIn struct {
		Value float64 `json:"value" binding:"min=0,max=5"`
	}
	httpez.Register[ratingIn, *domain.Rating](ez, d.DB, httpez.Action[ratingIn, *domain.Rating]{
		Method: http.MethodPost,
		Path:   "/photos/:id/rating",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *ratingIn) (*domain.Rating, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if actor == nil {
				return nil, httpez.Unauthorized("unauthorized")
			}
			if !authz.CanOnPhoto(actor, authz.View, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			r, err := d.Ratings.Rate(c, actor, photo, in.Value)
			if err != nil {
				return nil, svcErr(err)
			}
			return r, nil
		},
	})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/photos/:id/rating",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			photo, actor, err := d.loadPhoto(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnPhoto(actor, authz.View, photo) {
				return nil, httpez.Forbidden("forbidden")
			}
			avg, err := d.Ratings.AverageByPhoto(c, photo)
			if err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"photoId": photo.ID, "average": avg}, nil
		},
	})
}

// loadPhoto resolves the :id photo and the (possibly nil) actor.
func (d Deps) loadPhoto(c *gin.Context) (*domain.Photo, *domain.User, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, nil, err
	}
	photo, err := d.Photos.FindByID(id)
	if err != nil {
		return nil, nil, svcErr(err)
	}
	if photo == nil {
		return nil, nil, httpez.NotFound("photo not found")
	}
	actor, err := d.actor(c)
	if err != nil {
		return nil, nil, err
	}
	return photo, actor, nil
}

func formUint(c *gin.Context, field string) (uint, error) {
	v := strings.TrimSpace(c.PostForm(field))
	if v == "" {
		return 0, httpez.BadRequest(field + " is required")
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return 0, httpez.BadRequest("invalid " + field)
	}
	return uint(n), nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

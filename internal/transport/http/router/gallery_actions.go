package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/authz"
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/service"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

func mountGalleryActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	httpez.Register[struct{}, service.Page[domain.Gallery]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.Gallery]]{
			Method: http.MethodGet,
			Path:   "/galleries",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.Gallery], error) {
				return d.Galleries.List(pageParam(c))
			},
		})

	type galleryOut struct {
		Gallery *domain.Gallery            `json:"gallery"`
		Photos  service.Page[domain.Photo] `json:"photos"`
	}
	httpez.Register[struct{}, galleryOut](ez, d.DB, httpez.Action[struct{}, galleryOut]{
		Method: http.MethodGet,
		Path:   "/galleries/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (galleryOut, error) {
			gallery, _, err := d.loadGallery(c)
			if err != nil {
				return galleryOut{}, err
			}
			// galleries are always viewable; their photo page keeps the
			// default public-only filter
			gid := gallery.ID
			photos, err := d.Photos.List(pageParam(c), service.PhotoListInput{
				GalleryID: &gid,
				Status:    string(domain.StatusPublic),
			})
			if err != nil {
				return galleryOut{}, svcErr(err)
			}
			return galleryOut{Gallery: gallery, Photos: photos}, nil
		},
	})

	type galleryIn struct {
		Title string `json:"title" binding:"required,max=64"`
	}
	httpez.Register[galleryIn, *domain.Gallery](ez, d.DB, httpez.Action[galleryIn, *domain.Gallery]{
		Method: http.MethodPost,
		Path:   "/galleries",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *galleryIn) (*domain.Gallery, error) {
			actor, err := d.requireActor(c)
			if err != nil {
				return nil, err
			}
			g := &domain.Gallery{Title: in.Title}
			if err := d.Galleries.Create(g, actor); err != nil {
				return nil, svcErr(err)
			}
			return g, nil
		},
	})

	httpez.Register[galleryIn, *domain.Gallery](ez, d.DB, httpez.Action[galleryIn, *domain.Gallery]{
		Method: http.MethodPut,
		Path:   "/galleries/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *galleryIn) (*domain.Gallery, error) {
			gallery, actor, err := d.loadGallery(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnGallery(actor, authz.Edit, gallery) {
				return nil, httpez.Forbidden("forbidden")
			}
			gallery.Title = in.Title
			if err := d.Galleries.Update(gallery); err != nil {
				return nil, svcErr(err)
			}
			return gallery, nil
		},
	})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/galleries/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			gallery, actor, err := d.loadGallery(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnGallery(actor, authz.Delete, gallery) {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Galleries.Delete(gallery); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": gallery.ID}, nil
		},
	})

	type memberIn struct {
		UserID uint `json:"userId" binding:"required"`
	}
	httpez.Register[memberIn, *domain.Gallery](ez, d.DB, httpez.Action[memberIn, *domain.Gallery]{
		Method: http.MethodPost,
		Path:   "/galleries/:id/members",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *memberIn) (*domain.Gallery, error) {
			gallery, actor, err := d.loadGallery(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnGallery(actor, authz.Edit, gallery) {
				return nil, httpez.Forbidden("forbidden")
			}
			u, err := d.Users.FindByID(in.UserID)
			if err != nil {
				return nil, svcErr(err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			if err := d.Galleries.AddMember(gallery, u); err != nil {
				return nil, svcErr(err)
			}
			return gallery, nil
		},
	})
}

func (d Deps) loadGallery(c *gin.Context) (*domain.Gallery, *domain.User, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, nil, err
	}
	gallery, err := d.Galleries.FindByID(id)
	if err != nil {
		return nil, nil, svcErr(err)
	}
	if gallery == nil {
		return nil, nil, httpez.NotFound("gallery not found")
	}
	actor, err := d.actor(c)
	if err != nil {
		return nil, nil, err
	}
	return gallery, actor, nil
}

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

func mountUserActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	httpez.Register[struct{}, *domain.User](ez, d.DB, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.User, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.View, u) {
				return nil, httpez.Forbidden("forbidden")
			}
			return u, nil
		},
	})

	type profileIn struct {
		Name  string `json:"name"  binding:"required,max=180"`
		Email string `json:"email" binding:"required,email"`
	}
	httpez.Register[profileIn, *domain.User](ez, d.DB, httpez.Action[profileIn, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *profileIn) (*domain.User, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.Edit, u) {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Users.UpdateProfile(u, in.Name, in.Email); err != nil {
				return nil, svcErr(err)
			}
			return u, nil
		},
	})

	type passwordIn struct {
		Current string `json:"current" binding:"required"`
		Next    string `json:"next"    binding:"required,min=6"`
	}
	httpez.Register[passwordIn, gin.H](ez, d.DB, httpez.Action[passwordIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/users/:id/password",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *passwordIn) (gin.H, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.Edit, u) {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Users.ChangePassword(u, in.Current, in.Next); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": u.ID}, nil
		},
	})

	httpez.Register[service.PhotoListInput, service.Page[domain.Photo]](ez, d.DB,
		httpez.Action[service.PhotoListInput, service.Page[domain.Photo]]{
			Method: http.MethodGet,
			Path:   "/users/:id/photos",
			Binder: httpez.BindQuery,
			Handler: func(c *gin.Context, _ *gorm.DB, in *service.PhotoListInput) (service.Page[domain.Photo], error) {
				u, _, err := d.loadUser(c)
				if err != nil {
					return service.Page[domain.Photo]{}, err
				}
				return d.Photos.ListByAuthor(u, pageParam(c), *in)
			},
		})

	// comments are visible to their author only, so the listing is gated
	// the same way
	httpez.Register[struct{}, service.Page[domain.Comment]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.Comment]]{
			Method: http.MethodGet,
			Path:   "/users/:id/comments",
			Binder: httpez.BindNone,
			Auth:   true,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.Comment], error) {
				u, actor, err := d.loadUser(c)
				if err != nil {
					return service.Page[domain.Comment]{}, err
				}
				if !authz.CanOnUser(actor, authz.Edit, u) {
					return service.Page[domain.Comment]{}, httpez.Forbidden("forbidden")
				}
				return d.Comments.ListByUser(u, pageParam(c))
			},
		})
}

func (d Deps) loadUser(c *gin.Context) (*domain.User, *domain.User, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, nil, err
	}
	u, err := d.Users.FindByID(id)
	if err != nil {
		return nil, nil, svcErr(err)
	}
	if u == nil {
		return nil, nil, httpez.NotFound("user not found")
	}
	actor, err := d.actor(c)
	if err != nil {
		return nil, nil, err
	}
	return u, actor, nil
}

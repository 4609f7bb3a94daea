package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/service"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

func mountAdminActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	httpez.Register[struct{}, service.Page[domain.User]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.User]]{
			Method: http.MethodGet,
			Path:   "/users",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.User], error) {
				return d.Users.List(pageParam(c))
			},
		})

	type userModIn struct {
		Role   string `json:"role"   binding:"required,oneof=user admin"`
		Banned bool   `json:"banned"`
	}
	httpez.Register[userModIn, *domain.User](ez, d.DB, httpez.Action[userModIn, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *userModIn) (*domain.User, error) {
			id, err := paramID(c, "id")
			if err != nil {
				return nil, err
			}
			u, err := d.Users.FindByID(id)
			if err != nil {
				return nil, svcErr(err)
			}
			if u == nil {
				return nil, httpez.NotFound("user not found")
			}
			if err := d.Users.AdminUpdate(u, domain.Role(in.Role), in.Banned); err != nil {
				return nil, svcErr(err)
			}
			return u, nil
		},
	})

	httpez.Register[struct{}, service.Page[domain.Rating]](ez, d.DB,
		httpez.Action[struct{}, service.Page[domain.Rating]]{
			Method: http.MethodGet,
			Path:   "/photos/:id/ratings",
			Binder: httpez.BindNone,
			Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (service.Page[domain.Rating], error) {
				id, err := paramID(c, "id")
				if err != nil {
					return service.Page[domain.Rating]{}, err
				}
				photo, err := d.Photos.FindByID(id)
				if err != nil {
					return service.Page[domain.Rating]{}, svcErr(err)
				}
				if photo == nil {
					return service.Page[domain.Rating]{}, httpez.NotFound("photo not found")
				}
				return d.Ratings.ListByPhoto(photo, pageParam(c))
			},
		})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/ratings/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := paramID(c, "id")
			if err != nil {
				return nil, err
			}
			r, err := d.Ratings.FindByID(id)
			if err != nil {
				return nil, svcErr(err)
			}
			if r == nil {
				return nil, httpez.NotFound("rating not found")
			}
			if err := d.Ratings.Delete(c, r); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": r.ID}, nil
		},
	})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/comments/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			id, err := paramID(c, "id")
			if err != nil {
				return nil, err
			}
			cm, err := d.Comments.FindByID(id)
			if err != nil {
				return nil, svcErr(err)
			}
			if cm == nil {
				return nil, httpez.NotFound("comment not found")
			}
			if err := d.Comments.Delete(cm); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": cm.ID}, nil
		},
	})
}

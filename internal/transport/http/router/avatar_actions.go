package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/authz"
	"photo-gallery-api/internal/domain"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

// Avatar routes hang off the owning user and run through the user
// voter, so admins can manage any account's avatar and everyone else
// only their own.
func mountAvatarActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	httpez.Register[struct{}, *domain.Avatar](ez, d.DB, httpez.Action[struct{}, *domain.Avatar]{
		Method: http.MethodGet,
		Path:   "/users/:id/avatar",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Avatar, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.View, u) {
				return nil, httpez.Forbidden("forbidden")
			}
			a, err := d.Avatars.FindByUser(u)
			if err != nil {
				return nil, svcErr(err)
			}
			if a == nil {
				return nil, httpez.NotFound("no avatar")
			}
			return a, nil
		},
	})

	// POST both creates and replaces: uploading over an existing avatar
	// swaps the file and keeps the row.
	httpez.Register[struct{}, *domain.Avatar](ez, d.DB, httpez.Action[struct{}, *domain.Avatar]{
		Method: http.MethodPost,
		Path:   "/users/:id/avatar",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Avatar, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.Edit, u) {
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

			a, err := d.Avatars.FindByUser(u)
			if err != nil {
				return nil, svcErr(err)
			}
			if a == nil {
				a, err = d.Avatars.Create(f, fh.Filename, u)
				if err != nil {
					return nil, svcErr(err)
				}
				return a, nil
			}
			if err := d.Avatars.Update(a, f, fh.Filename); err != nil {
				return nil, svcErr(err)
			}
			return a, nil
		},
	})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id/avatar",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			u, actor, err := d.loadUser(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnUser(actor, authz.Edit, u) {
				return nil, httpez.Forbidden("forbidden")
			}
			a, err := d.Avatars.FindByUser(u)
			if err != nil {
				return nil, svcErr(err)
			}
			if a == nil {
				return nil, httpez.NotFound("no avatar")
			}
			if err := d.Avatars.Delete(a); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": a.ID}, nil
		},
	})
}

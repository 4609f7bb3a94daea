package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/authz"
	"photo-gallery-api/internal/domain"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

func mountCommentActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	httpez.Register[struct{}, *domain.Comment](ez, d.DB, httpez.Action[struct{}, *domain.Comment]{
		Method: http.MethodGet,
		Path:   "/comments/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Comment, error) {
			comment, actor, err := d.loadComment(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnComment(actor, authz.View, comment) {
				return nil, httpez.Forbidden("forbidden")
			}
			return comment, nil
		},
	})

	type commentEditIn struct {
		Content string `json:"content" binding:"required,max=2000"`
	}
	httpez.Register[commentEditIn, *domain.Comment](ez, d.DB, httpez.Action[commentEditIn, *domain.Comment]{
		Method: http.MethodPut,
		Path:   "/comments/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *commentEditIn) (*domain.Comment, error) {
			comment, actor, err := d.loadComment(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnComment(actor, authz.Edit, comment) {
				return nil, httpez.Forbidden("forbidden")
			}
			comment.Content = in.Content
			if err := d.Comments.Update(comment); err != nil {
				return nil, svcErr(err)
			}
			return comment, nil
		},
	})

	httpez.Register[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/comments/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			comment, actor, err := d.loadComment(c)
			if err != nil {
				return nil, err
			}
			if !authz.CanOnComment(actor, authz.Delete, comment) {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Comments.Delete(comment); err != nil {
				return nil, svcErr(err)
			}
			return gin.H{"id": comment.ID}, nil
		},
	})
}

func (d Deps) loadComment(c *gin.Context) (*domain.Comment, *domain.User, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, nil, err
	}
	comment, err := d.Comments.FindByID(id)
	if err != nil {
		return nil, nil, svcErr(err)
	}
	if comment == nil {
		return nil, nil, httpez.NotFound("comment not found")
	}
	actor, err := d.actor(c)
	if err != nil {
		return nil, nil, err
	}
	return comment, actor, nil
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"photo-gallery-api/internal/domain"
	httpez "photo-gallery-api/internal/transport/http/ez"
)

func mountAuthActions(api *gin.RouterGroup, d Deps) {
	ez := httpez.New(api)

	type registerIn struct {
		Name     string `json:"name"     binding:"required,max=180"`
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	httpez.Register[registerIn, *domain.User](ez, d.DB, httpez.Action[registerIn, *domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *registerIn) (*domain.User, error) {
			u, err := d.Users.Register(in.Name, in.Email, in.Password)
			if err != nil {
				return nil, svcErr(err)
			}
			return u, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	httpez.Register[loginIn, loginOut](ez, d.DB, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *loginIn) (loginOut, error) {
			u, err := d.Users.Authenticate(in.Email, in.Password)
			if err != nil {
				return loginOut{}, svcErr(err)
			}
			tok, err := d.JWT.Issue(u.ID, string(u.Role))
			if err != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, User: u}, nil
		},
	})

	httpez.Register[struct{}, *domain.User](ez, d.DB, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.User, error) {
			return d.requireActor(c)
		},
	})
}

package router

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photo-gallery-api/internal/core/auth"
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/service"
	httpez "photo-gallery-api/internal/transport/http/ez"
	mdw "photo-gallery-api/internal/transport/http/middleware"
)

// Deps bundles everything the engines mount.
type Deps struct {
	Log       *zap.Logger
	DB        *gorm.DB
	JWT       *auth.JWTer
	Users     *service.UserService
	Photos    *service.PhotoService
	Galleries *service.GalleryService
	Comments  *service.CommentService
	Ratings   *service.RatingService
	Avatars   *service.AvatarService
	Tags      *service.TagService
}

// paramID parses a positive numeric path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, httpez.BadRequest("invalid id")
	}
	return uint(n), nil
}

// actor loads the authenticated user, or returns nil for anonymous
// requests. Voters treat nil as the anonymous actor.
func (d Deps) actor(c *gin.Context) (*domain.User, error) {
	uid := mdw.UID(c)
	if uid == 0 {
		return nil, nil
	}
	u, err := d.Users.FindByID(uid)
	if err != nil {
		return nil, httpez.Internal("load user", err)
	}
	if u == nil {
		return nil, httpez.Unauthorized("unknown account")
	}
	return u, nil
}

// requireActor is actor for routes that never accept anonymous callers.
func (d Deps) requireActor(c *gin.Context) (*domain.User, error) {
	u, err := d.actor(c)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, httpez.Unauthorized("unauthorized")
	}
	return u, nil
}

// svcErr maps service sentinels onto envelope codes.
func svcErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrNotFound):
		return httpez.NotFound(err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrGalleryNotEmpty),
		errors.Is(err, service.ErrLastAdmin),
		errors.Is(err, service.ErrBanAdmin):
		return httpez.BadRequest(err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		return httpez.Unauthorized(err.Error())
	default:
		return httpez.Internal("internal error", err)
	}
}

func pageParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

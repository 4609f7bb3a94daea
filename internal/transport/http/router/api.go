package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mdw "photo-gallery-api/internal/transport/http/middleware"
)

// NewAPIEngine builds the public gallery API. Every /api/v1 route runs
// behind optional authentication: anonymous callers reach the public
// listings, the voters and Action.Auth gate the rest.
func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(mdw.AuthOptional(d.JWT))

	mountAuthActions(api, d)
	mountPhotoActions(api, d)
	mountGalleryActions(api, d)
	mountUserActions(api, d)
	mountAvatarActions(api, d)
	mountCommentActions(api, d)

	return r
}

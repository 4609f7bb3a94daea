package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photo-gallery-api/internal/core/auth"
	"photo-gallery-api/internal/core/cache"
	"photo-gallery-api/internal/core/config"
	"photo-gallery-api/internal/core/database"
	"photo-gallery-api/internal/core/logger"
	"photo-gallery-api/internal/core/server"
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/repo"
	"photo-gallery-api/internal/service"
	"photo-gallery-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.DSN)),
	)

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{}, &domain.Avatar{}, &domain.Gallery{},
			&domain.Photo{}, &domain.Tag{}, &domain.Comment{}, &domain.Rating{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	var rdb *cache.Cache
	if cfg.Redis.Addr != "" {
		rdb = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	deps := buildDeps(cfg, log, db, jwter, rdb)
	r := router.NewAPIEngine(deps)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("gallery api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("gallery api start FAILED", zap.Error(err))
		}
	}()
	log.Info("gallery api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("gallery api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func buildDeps(cfg *config.Config, log *zap.Logger, db *gorm.DB, jwter *auth.JWTer, rdb *cache.Cache) router.Deps {
	photoFiles, err := service.NewUploadStore(cfg.Upload.PhotoDir, log)
	if err != nil {
		log.Fatal("photo upload dir", zap.Error(err))
	}
	avatarFiles, err := service.NewUploadStore(cfg.Upload.AvatarDir, log)
	if err != nil {
		log.Fatal("avatar upload dir", zap.Error(err))
	}

	users := repo.NewUserRepo(db)
	photos := repo.NewPhotoRepo(db)
	galleries := repo.NewGalleryRepo(db)
	tags := repo.NewTagRepo(db)
	comments := repo.NewCommentRepo(db)
	ratings := repo.NewRatingRepo(db)
	avatars := repo.NewAvatarRepo(db)

	tagSvc := service.NewTagService(tags)
	return router.Deps{
		Log:       log,
		DB:        db,
		JWT:       jwter,
		Users:     service.NewUserService(users),
		Photos:    service.NewPhotoService(photos, galleries, tagSvc, photoFiles),
		Galleries: service.NewGalleryService(galleries, photos),
		Comments:  service.NewCommentService(comments),
		Ratings:   service.NewRatingService(ratings, rdb),
		Avatars:   service.NewAvatarService(avatars, avatarFiles),
		Tags:      tagSvc,
	}
}

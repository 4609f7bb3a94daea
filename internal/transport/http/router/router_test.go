package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photo-gallery-api/internal/core/auth"
	"photo-gallery-api/internal/domain"
	"photo-gallery-api/internal/repo"
	"photo-gallery-api/internal/service"
	resp "photo-gallery-api/internal/transport/http/response"
	"photo-gallery-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestDeps(t *testing.T) (Deps, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Avatar{}, &domain.Gallery{},
		&domain.Photo{}, &domain.Tag{}, &domain.Comment{}, &domain.Rating{},
	))

	log := zap.NewNop()
	photoFiles, err := service.NewUploadStore(t.TempDir(), log)
	require.NoError(t, err)
	avatarFiles, err := service.NewUploadStore(t.TempDir(), log)
	require.NoError(t, err)

	users := repo.NewUserRepo(db)
	photos := repo.NewPhotoRepo(db)
	galleries := repo.NewGalleryRepo(db)
	tags := service.NewTagService(repo.NewTagRepo(db))

	return Deps{
		Log:       log,
		DB:        db,
		JWT:       &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour},
		Users:     service.NewUserService(users),
		Photos:    service.NewPhotoService(photos, galleries, tags, photoFiles),
		Galleries: service.NewGalleryService(galleries, photos),
		Comments:  service.NewCommentService(repo.NewCommentRepo(db)),
		Ratings:   service.NewRatingService(repo.NewRatingRepo(db), nil),
		Avatars:   service.NewAvatarService(repo.NewAvatarRepo(db), avatarFiles),
		Tags:      tags,
	}, db
}

func seedAccount(t *testing.T, db *gorm.DB, d Deps, name string, role domain.Role) (*domain.User, string) {
	t.Helper()
	u := &domain.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: utils.HashPassword("secret1"),
		Role:         role,
	}
	require.NoError(t, db.Create(u).Error)
	tok, err := d.JWT.Issue(u.ID, string(u.Role))
	require.NoError(t, err)
	return u, tok
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func do(t *testing.T, e *gin.Engine, method, path, token string, body io.Reader, contentType string) envelope {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func doJSON(t *testing.T, e *gin.Engine, method, path, token string, payload any) envelope {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return do(t, e, method, path, token, bytes.NewReader(b), "application/json")
}

func fileUpload(t *testing.T, content, filename string) (io.Reader, string) {
	t.Helper()
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &b, w.FormDataContentType()
}

func TestGalleryCreateAndRename(t *testing.T) {
	d, db := newTestDeps(t)
	e := NewAPIEngine(d)
	_, aliceTok := seedAccount(t, db, d, "alice", domain.RoleUser)
	_, bobTok := seedAccount(t, db, d, "bob", domain.RoleUser)

	env := doJSON(t, e, http.MethodPost, "/api/v1/galleries", aliceTok, gin.H{"title": "Summer Trip"})
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	var g domain.Gallery
	require.NoError(t, json.Unmarshal(env.Data, &g))
	assert.Equal(t, "summer-trip", g.Slug)

	path := fmt.Sprintf("/api/v1/galleries/%d", g.ID)
	env = doJSON(t, e, http.MethodPut, path, aliceTok, gin.H{"title": "Winter Trip"})
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	require.NoError(t, json.Unmarshal(env.Data, &g))
	assert.Equal(t, "Winter Trip", g.Title)
	assert.Equal(t, "winter-trip", g.Slug)

	// non-members may not rename
	env = doJSON(t, e, http.MethodPut, path, bobTok, gin.H{"title": "Hijacked"})
	assert.Equal(t, resp.CodeForbidden, env.Code)
}

func TestUserProfileIsSelfOrAdminOnly(t *testing.T) {
	d, db := newTestDeps(t)
	e := NewAPIEngine(d)
	alice, aliceTok := seedAccount(t, db, d, "alice", domain.RoleUser)
	_, bobTok := seedAccount(t, db, d, "bob", domain.RoleUser)
	_, adminTok := seedAccount(t, db, d, "root", domain.RoleAdmin)

	path := fmt.Sprintf("/api/v1/users/%d", alice.ID)

	env := do(t, e, http.MethodGet, path, "", nil, "")
	assert.Equal(t, resp.CodeForbidden, env.Code, "anonymous callers get no profile")

	env = do(t, e, http.MethodGet, path, bobTok, nil, "")
	assert.Equal(t, resp.CodeForbidden, env.Code, "other accounts get no profile")

	env = do(t, e, http.MethodGet, path, aliceTok, nil, "")
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)
	var u domain.User
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, alice.Email, u.Email)

	env = do(t, e, http.MethodGet, path, adminTok, nil, "")
	assert.Equal(t, resp.CodeOK, env.Code)
}

func TestAvatarRoutesRunThroughUserVoter(t *testing.T) {
	d, db := newTestDeps(t)
	e := NewAPIEngine(d)
	alice, aliceTok := seedAccount(t, db, d, "alice", domain.RoleUser)
	_, bobTok := seedAccount(t, db, d, "bob", domain.RoleUser)
	_, adminTok := seedAccount(t, db, d, "root", domain.RoleAdmin)

	path := fmt.Sprintf("/api/v1/users/%d/avatar", alice.ID)

	body, ct := fileUpload(t, "png bytes", "face.png")
	env := do(t, e, http.MethodPost, path, bobTok, body, ct)
	assert.Equal(t, resp.CodeForbidden, env.Code, "strangers cannot set someone else's avatar")

	// admins manage any account's avatar
	body, ct = fileUpload(t, "png bytes", "face.png")
	env = do(t, e, http.MethodPost, path, adminTok, body, ct)
	require.Equal(t, resp.CodeOK, env.Code, env.Msg)

	env = do(t, e, http.MethodGet, path, aliceTok, nil, "")
	require.Equal(t, resp.CodeOK, env.Code)
	var a domain.Avatar
	require.NoError(t, json.Unmarshal(env.Data, &a))
	assert.Equal(t, alice.ID, a.UserID)

	env = do(t, e, http.MethodDelete, path, bobTok, nil, "")
	assert.Equal(t, resp.CodeForbidden, env.Code)

	env = do(t, e, http.MethodDelete, path, aliceTok, nil, "")
	assert.Equal(t, resp.CodeOK, env.Code)
}

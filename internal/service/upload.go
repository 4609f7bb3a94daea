package service

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadStore writes uploaded files into a single directory under
// random names. Removal is best-effort: the DB row is the source of
// truth and a stale file only wastes disk.
type UploadStore struct {
	dir string
	log *zap.Logger
}

func NewUploadStore(dir string, log *zap.Logger) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadStore{dir: dir, log: log}, nil
}

// Save stores the stream under a fresh random name, keeping the original
// extension, and returns the generated filename.
func (s *UploadStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Remove deletes the named file. Failure is logged and swallowed; the
// filesystem and the database are not transactionally coupled.
func (s *UploadStore) Remove(filename string) {
	if filename == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("remove upload", zap.String("file", filename), zap.Error(err))
	}
}

func (s *UploadStore) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"national-connect-backend/internal/apperrors"
)

// MaxFileSize is the upload size limit in bytes (10MB).
const MaxFileSize = 10 << 20

// PublicPrefix is the URL prefix the saved files are served under.
const PublicPrefix = "/uploads/"

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Storage persists uploaded images under a local directory served as
// static files. It is the only component that touches disk.
type Storage struct {
	dir string

	mu        sync.Mutex
	lastStamp int64
}

// New creates the upload directory if needed and returns a storage
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the directory files are saved to
func (s *Storage) Dir() string {
	return s.dir
}

// StoredFile describes a persisted upload: the on-disk filename and the
// public path it is served from.
type StoredFile struct {
	Filename string
	Path     string
}

// Save validates and persists one uploaded image. Both the filename
// extension and the declared content type must name an allowed image
// format, and the file must not exceed MaxFileSize.
func (s *Storage) Save(file multipart.File, header *multipart.FileHeader) (*StoredFile, error) {
	if header.Size > MaxFileSize {
		return nil, apperrors.Validation("File too large")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if !allowedExtensions[ext] || !imageContentType(contentType) {
		return nil, apperrors.Validation("Images only!")
	}

	name := fmt.Sprintf("%d-%s", s.nextStamp(), filepath.Base(header.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, apperrors.Internal("failed to store file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxFileSize)); err != nil {
		return nil, apperrors.Internal("failed to store file", err)
	}

	return &StoredFile{
		Filename: name,
		Path:     PublicPrefix + name,
	}, nil
}

func imageContentType(contentType string) bool {
	for _, t := range []string{"jpeg", "jpg", "png", "gif"} {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

// nextStamp returns a millisecond timestamp bumped to be strictly
// increasing per process, so two uploads in the same millisecond still
// get distinct filenames.
func (s *Storage) nextStamp() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= s.lastStamp {
		now = s.lastStamp + 1
	}
	s.lastStamp = now
	return now
}

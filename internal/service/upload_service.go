// Package service contains application services that sit between handlers
// and the data layer.
package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gatorkut/internal/config"
	"gatorkut/internal/models"

	"github.com/google/uuid"
)

const (
	// DefaultMaxUploadMB bounds upload size when config does not override it.
	DefaultMaxUploadMB = 10

	// URLPrefix is the public path uploads are served under.
	URLPrefix = "/uploads"
)

// UploadService persists uploaded images under a flat public directory.
// Files are named <millisecond-timestamp>-<6-char-suffix><ext> and referenced
// by their relative URL; anyone holding the URL can fetch the file.
type UploadService struct {
	dir      string
	maxBytes int64
}

// NewUploadService returns an UploadService writing into the configured
// upload directory.
func NewUploadService(cfg *config.Config) *UploadService {
	dir := "uploads"
	maxMB := DefaultMaxUploadMB
	if cfg != nil {
		if cfg.UploadDir != "" {
			dir = cfg.UploadDir
		}
		if cfg.MaxUploadMB > 0 {
			maxMB = cfg.MaxUploadMB
		}
	}
	return &UploadService{
		dir:      dir,
		maxBytes: int64(maxMB) * 1024 * 1024,
	}
}

// SaveMultipart stores an uploaded multipart file and returns its public URL.
func (s *UploadService) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", models.NewValidationError("No file uploaded")
	}
	if fh.Size > s.maxBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxBytes/(1024*1024)))
	}

	src, err := fh.Open()
	if err != nil {
		return "", models.NewStorageError(err)
	}
	defer func() { _ = src.Close() }()

	name := s.generateName(strings.ToLower(filepath.Ext(fh.Filename)))
	if err := s.writeFile(name, src); err != nil {
		return "", err
	}
	return URLPrefix + "/" + name, nil
}

// SaveBase64 decodes a data-URI payload ("data:<mime>;base64,<payload>") and
// stores it. The file is always written with a .png extension regardless of
// the declared mime type.
func (s *UploadService) SaveBase64(dataURI string) (string, error) {
	payload, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if int64(len(payload)) > s.maxBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxBytes/(1024*1024)))
	}

	name := s.generateName(".png")
	if err := s.writeFile(name, strings.NewReader(string(payload))); err != nil {
		return "", err
	}
	return URLPrefix + "/" + name, nil
}

// decodeDataURI validates and decodes a base64 data URI.
func decodeDataURI(dataURI string) ([]byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, models.NewValidationError("Invalid image data")
	}
	idx := strings.Index(dataURI, ";base64,")
	if idx < 0 {
		return nil, models.NewValidationError("Invalid image data")
	}
	payload, err := base64.StdEncoding.DecodeString(dataURI[idx+len(";base64,"):])
	if err != nil {
		return nil, models.NewValidationError("Invalid image data")
	}
	if len(payload) == 0 {
		return nil, models.NewValidationError("Invalid image data")
	}
	return payload, nil
}

func (s *UploadService) generateName(ext string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:6], ext)
}

func (s *UploadService) writeFile(name string, src io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return models.NewStorageError(err)
	}

	path := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return models.NewStorageError(err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return models.NewStorageError(err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return models.NewStorageError(err)
	}
	return nil
}

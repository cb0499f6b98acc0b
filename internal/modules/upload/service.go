package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"interiorstudio/internal/storage"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

// AllowedMimeTypes defines which file types are accepted. The admin panel
// only uploads site imagery.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Service pushes admin-uploaded images to the object store and returns their
// public URLs. Nothing is recorded locally; entities reference the URLs.
type Service struct {
	store storage.ImageStore
}

func NewService(store storage.ImageStore) *Service {
	return &Service{store: store}
}

// UploadImage validates and stores one image under the given folder
// ("portfolio", "hero", "logo", ...) and returns its public URL.
func (s *Service) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	if s.store == nil {
		return "", ErrStoreUnavailable
	}
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	// DetectContentType has no SVG signature and reports XML or plain text,
	// so SVG is recognized by extension.
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) == ".svg" {
		switch mimeType {
		case "text/xml", "application/xml", "text/plain":
			mimeType = "image/svg+xml"
		}
	}

	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return s.store.UploadImage(ctx, folder, fileHeader.Filename, mimeType, file, fileHeader.Size)
}

// Package upload stores wizard assets (project media and documents) on local
// disk and hands back the public URL persisted on the aggregate.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxFileSize = 25 << 20 // 25 MiB

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".mp4": true, ".webm": true,
	".pdf": true, ".doc": true, ".docx": true,
}

type Uploader struct {
	dir     string
	baseURL string
}

func NewUploader(dir, baseURL string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Uploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the file under a folder named after its upload type and returns
// the public URL. Filenames are prefixed with a UUID so uploads never collide.
func (u *Uploader) Save(fileHeader *multipart.FileHeader, uploadType string) (string, error) {
	if fileHeader.Size > maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}

	folder := sanitizeFolder(uploadType)
	if err := os.MkdirAll(filepath.Join(u.dir, folder), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s", folder, uuid.New().String(), sanitizeName(fileHeader.Filename))

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, folder, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", u.baseURL, folder, name), nil
}

// Dir returns the root of the upload tree, for serving it statically.
func (u *Uploader) Dir() string {
	return u.dir
}

func sanitizeFolder(uploadType string) string {
	folder := strings.ToLower(strings.TrimSpace(uploadType))
	switch folder {
	case "document", "documents":
		return "documents"
	case "video", "videos":
		return "videos"
	default:
		return "media"
	}
}

// sanitizeName strips path separators and whitespace from client filenames.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

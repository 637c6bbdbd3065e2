// Package upload stores admin-submitted images under a public directory.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path under which saved files are served.
const PublicPrefix = "/uploads/"

// Service writes uploaded files to a publicly servable directory.
type Service struct {
	dir string
}

// NewService creates an upload service rooted at dir.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Save writes each file to the uploads directory and returns its public URL,
// in submission order. A failed write fails the whole batch; there is no
// partial-success reporting.
func (s *Service) Save(files []*multipart.FileHeader) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("opening upload %s: %w", fh.Filename, err)
		}

		url, err := s.SaveFile(fh.Filename, f)
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing upload %s: %w", fh.Filename, closeErr)
		}
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// SaveFile writes a single file under a fresh public name and returns its URL.
func (s *Service) SaveFile(name string, r io.Reader) (string, error) {
	filename := uniqueName(name)
	path := filepath.Join(s.dir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := io.Copy(out, r); err != nil {
		if closeErr := out.Close(); closeErr != nil {
			return "", fmt.Errorf("writing %s: %w (also failed to close: %v)", path, err, closeErr)
		}
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	return PublicPrefix + filename, nil
}

// uniqueName builds the stored filename: millisecond timestamp, a random
// component, and the original name with whitespace collapsed to hyphens.
// The random component closes the collision window between concurrent
// uploads of the same name within the same millisecond.
func uniqueName(original string) string {
	base := filepath.Base(original)
	base = strings.Join(strings.Fields(base), "-")
	if base == "" || base == "." {
		base = "file"
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], base)
}

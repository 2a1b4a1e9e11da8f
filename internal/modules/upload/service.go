package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// allowedExtensions is the design-file whitelist. Everything else is refused
// before a byte is written.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// Service defines design-file upload business logic.
type Service interface {
	// Store validates and writes the file to disk, then records it.
	Store(ctx context.Context, originalName string, size int64, content io.Reader) (*UploadedFile, error)
}

type service struct {
	repo     Repository
	dir      string
	maxBytes int64
}

// NewService creates an upload service writing into dir. The directory is
// created on first use.
func NewService(repo Repository, dir string, maxBytes int64) Service {
	return &service{repo: repo, dir: dir, maxBytes: maxBytes}
}

func (s *service) Store(ctx context.Context, originalName string, size int64, content io.Reader) (*UploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("only PNG, JPG, and PDF files are allowed")
	}
	if size > s.maxBytes {
		return nil, fmt.Errorf("file exceeds the %s limit", sizeLabel(s.maxBytes))
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	storedName := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	defer dst.Close()

	// enforce the limit on the actual stream, not just the declared size
	written, err := io.Copy(dst, io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return nil, fmt.Errorf("file exceeds the %s limit", sizeLabel(s.maxBytes))
	}

	f := &UploadedFile{
		ID:        uuid.New(),
		FileName:  filepath.Base(originalName),
		FileURL:   "/uploads/" + storedName,
		SizeBytes: written,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}
	return f, nil
}

// sizeLabel renders the limit in whole megabytes when it is one, otherwise in
// raw bytes, so a sub-megabyte limit never reads as "0MB".
func sizeLabel(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}

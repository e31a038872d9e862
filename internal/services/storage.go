package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/studybuddy/internal/models"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath  string
	maxFileSize int64
}

func NewStorageService(uploadPath string, maxFileSize int64) StorageService {
	return &storageService{
		uploadPath:  uploadPath,
		maxFileSize: maxFileSize,
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile stores an uploaded resume and returns its stored name and path.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, error) {
	if file == nil || file.Filename == "" {
		return "", "", models.ErrNoFileUploaded
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isSupportedResume(ext) {
		return "", "", fmt.Errorf("%w: invalid file extension %q", models.ErrNoFileUploaded, ext)
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return "", "", fmt.Errorf("%w: %d bytes", models.ErrFileTooLarge, file.Size)
	}

	uniqueFilename := storedName(file.Filename, ext, time.Now())
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(s.GetFilePath(filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// storedName is "<unix>_<short id>_<sanitized base><ext>".
func storedName(original, ext string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Trim(unsafeFilenameChars.ReplaceAllString(base, "_"), "._")
	if base == "" {
		base = "resume"
	}
	if len(base) > 64 {
		base = base[:64]
	}
	return fmt.Sprintf("%d_%s_%s%s", now.Unix(), uuid.NewString()[:8], base, ext)
}

func isSupportedResume(ext string) bool {
	for _, e := range SupportedResumeExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

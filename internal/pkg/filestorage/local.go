package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/logger"
)

// MaxFileSize is the upload cap for project files (50MB).
const MaxFileSize = 50 << 20

// allowedExtensions is the project file extension allow-list.
var allowedExtensions = map[string]bool{
	".zip": true, ".rar": true, ".7z": true,
	".pdf": true, ".doc": true, ".docx": true,
	".ppt": true, ".pptx": true, ".xls": true, ".xlsx": true,
	".txt": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

// ExtensionAllowed reports whether the filename's extension is on the
// upload allow-list.
func ExtensionAllowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// LocalStorage handles saving project files to the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath,
// creating the directory when missing.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile validates and saves an uploaded file. The stored name is a
// fresh UUID plus the original extension, so concurrent uploads never
// collide. Returns the path relative to the storage root.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrProjectFileMissing
	}
	if fileHeader.Size > MaxFileSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !ExtensionAllowed(fileHeader.Filename) {
		return "", apperrors.ErrFileTypeNotAllowed
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved successfully")
	return uniqueFilename, nil
}

// DeleteFile removes a stored file. Returns nil when the file is
// already gone (idempotent).
func (ls *LocalStorage) DeleteFile(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	filename := filepath.Base(storedPath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", storedPath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath returns the full filesystem path for a stored path.
func (ls *LocalStorage) FullPath(storedPath string) string {
	filename := filepath.Base(storedPath)
	if filename == "" || filename == "." || filename == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, filename)
}

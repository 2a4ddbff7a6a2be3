package filestorage

import "mime/multipart"

// FileStorage defines the interface for project file storage operations
type FileStorage interface {
	// SaveFile saves an uploaded file under a collision-resistant name
	// and returns the stored path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// FullPath returns the full filesystem path for a stored path
	FullPath(storedPath string) string
}

package filestorage

import (
	"errors"
	"mime/multipart"
)

// Storage errors surfaced to callers
var (
	// ErrUnsupportedType is returned for files outside the allowed extensions
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrTooLarge is returned when the upload exceeds the size limit
	ErrTooLarge = errors.New("file too large")
)

// FileStorage stores uploaded files and maps them to public URLs
type FileStorage interface {
	// SaveFile stores the upload under subDir and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error)

	// DeleteFile removes the file behind a URL previously returned by SaveFile.
	// URLs not managed by the storage are ignored.
	DeleteFile(fileURL string) error
}

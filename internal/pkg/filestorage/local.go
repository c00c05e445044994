package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// MaxAvatarSize bounds avatar uploads
const MaxAvatarSize = 5 << 20

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath  string // Root directory on disk
	urlPrefix string // Public URL prefix the root is served under, e.g. /uploads
	maxSize   int64
}

// NewLocalStorage creates the base directory and returns a LocalStorage serving it under urlPrefix.
// Only the path of urlPrefix is kept, so "http://host/uploads" and "/uploads" are equivalent.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: prefixPath(urlPrefix),
		maxSize:   MaxAvatarSize,
	}, nil
}

func prefixPath(prefix string) string {
	if u, err := url.Parse(prefix); err == nil && u.Host != "" {
		prefix = u.Path
	}
	return path.Clean("/" + strings.Trim(prefix, "/"))
}

// BasePath returns the directory files are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// URLPrefix returns the public prefix
func (ls *LocalStorage) URLPrefix() string {
	return ls.urlPrefix
}

// SaveFile stores an image under subDir with a random name
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file uploaded")
	}
	if fileHeader.Size > ls.maxSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return "", ErrUnsupportedType
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := filepath.Join(ls.basePath, filepath.Clean("/"+subDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	// One extra byte detects bodies larger than the declared size
	n, err := io.Copy(dst, io.LimitReader(file, ls.maxSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > ls.maxSize {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(dstPath)
		if err == ErrTooLarge {
			return "", err
		}
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return path.Join(ls.urlPrefix, filepath.ToSlash(filepath.Clean("/"+subDir)), name), nil
}

// DeleteFile removes a stored file by URL. Absolute URLs are matched on their path.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	if u, err := url.Parse(fileURL); err == nil && u.Host != "" {
		fileURL = u.Path
	}
	if !strings.HasPrefix(fileURL, ls.urlPrefix+"/") {
		return nil
	}
	rel := strings.TrimPrefix(fileURL, ls.urlPrefix)
	full := filepath.Join(ls.basePath, filepath.FromSlash(path.Clean(rel)))

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Str("path", full).Msg("Failed to delete stored file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

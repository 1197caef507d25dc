package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/otabek/juniorhub/internal/pkg/logger"
)

// LocalStorage stores uploaded images on the local filesystem and serves
// them back through the /media static route.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath. baseURL is
// prepended to stored paths when resolving client URLs (e.g. "/media").
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveImage stores an uploaded image under basePath/subPath with a unique
// filename and returns the relative path to record on the entity.
func (ls *LocalStorage) SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := ls.basePath
	if subPath != "" {
		dirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename so repeated uploads never collide
	uniqueName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dirPath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := uniqueName
	if subPath != "" {
		relPath = subPath + "/" + uniqueName
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("Image saved")
	return relPath, nil
}

// DeleteImage removes a stored image. A missing file is treated as already deleted.
func (ls *LocalStorage) DeleteImage(path string) error {
	if path == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, filepath.Clean(path))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}

// ResolveURL turns a stored relative path into the URL clients fetch it from.
func (ls *LocalStorage) ResolveURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := ls.baseURL + "/" + strings.TrimLeft(*path, "/")
	return &url
}

// BasePath returns the storage root directory.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

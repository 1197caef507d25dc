package filestorage

import "mime/multipart"

// ImageStorage defines the storage operations the content entities need
// for their uploaded images.
type ImageStorage interface {
	// SaveImage stores an uploaded image under the given subdirectory
	// (e.g. "mentors", "news") and returns the stored relative path.
	SaveImage(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteImage removes a previously stored image. Missing files are not an error.
	DeleteImage(path string) error

	// ResolveURL turns a stored relative path into a client-resolvable URL.
	// Returns nil when path is nil (no image attached).
	ResolveURL(path *string) *string
}

package storage

import (
	"context"
	"io"
)

// FileStorage stores uploaded files. The only current backend is the local
// filesystem; paths returned by Upload are stable keys, not URLs.
type FileStorage interface {
	// Upload writes the file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL resolves a stored key to a publicly servable URL.
	URL(path string) string
}

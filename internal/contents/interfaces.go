package contents

import (
	"context"

	"github.com/jovian-labs/nbserve/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contents_service_mock.go -package=mock

// ContentsService answers existence, visibility and retrieval questions about
// entries under the served content root. Paths are application-relative,
// slash-separated and carry no leading slash; the empty path names the root
// directory itself.
type ContentsService interface {
	// DirExists reports whether path names an existing directory.
	DirExists(ctx context.Context, path string) bool

	// FileExists reports whether path names an existing regular file.
	FileExists(ctx context.Context, path string) bool

	// IsHidden reports whether path names a hidden entry or lies inside a
	// hidden directory. Hidden entries exist but are refused unless
	// AllowHidden allows serving them.
	IsHidden(ctx context.Context, path string) bool

	// AllowHidden reports whether hidden entries may be served.
	AllowHidden() bool

	// Get retrieves the entry at path together with its resolved type.
	// When withContent is false the entry carries metadata only; file bytes
	// are not read from disk.
	Get(ctx context.Context, path string, withContent bool) (models.Entry, error)
}

package media

import (
	"path"
	"path/filepath"
	"strings"

	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// ErrForeignURL is returned when a URL was not produced by the configured storage.
var ErrForeignURL = errors.New("media url does not belong to this storage")

// objectKey builds a collision-free key such as "vidtube/videos/<uuid>.mp4".
func objectKey(folder string, kind service.MediaKind, name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	return path.Join(folder, string(kind)+"s", uuid.NewString()+ext)
}

// keyFromURL reverses baseURL + "/" + key.
func keyFromURL(baseURL, rawURL string) (string, error) {
	base := strings.TrimSuffix(baseURL, "/")
	if base == "" {
		return "", errors.Wrap(ErrForeignURL, "no public base url configured")
	}

	key, ok := strings.CutPrefix(rawURL, base+"/")
	if !ok || key == "" {
		return "", errors.Wrapf(ErrForeignURL, "url %q", rawURL)
	}

	return key, nil
}

func publicURL(baseURL, key string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + key
}

package texture

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/gfx"
)

// Source supplies encoded image bytes by path.
type Source interface {
	Load(path string) ([]byte, error)
}

// Loader turns asset paths into GPU textures, uploading each path once.
type Loader struct {
	src      Source
	uploader gfx.TextureUploader
	log      *zap.Logger

	loaded map[string]gfx.Texture
	failed map[string]error
}

// NewLoader creates a loader reading from src and uploading through up.
func NewLoader(src Source, up gfx.TextureUploader, log *zap.Logger) *Loader {
	return &Loader{
		src:      src,
		uploader: up,
		log:      log,
		loaded:   make(map[string]gfx.Texture),
		failed:   make(map[string]error),
	}
}

// Load returns the texture for path. A file that is missing or fails to
// decode or upload yields the zero handle and a warning; the caller keeps
// running and draws with no texture bound. Failures are remembered so
// the warning is logged once per path.
func (l *Loader) Load(path string, s gfx.Sampling) gfx.Texture {
	if path == "" {
		return 0
	}
	if t, ok := l.loaded[path]; ok {
		return t
	}
	if _, ok := l.failed[path]; ok {
		return 0
	}

	t, err := l.load(path, s)
	if err != nil {
		l.failed[path] = err
		l.log.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return 0
	}

	l.loaded[path] = t
	l.log.Debug("texture loaded", zap.String("path", path), zap.Uint32("id", uint32(t)))
	return t
}

func (l *Loader) load(path string, s gfx.Sampling) (gfx.Texture, error) {
	data, err := l.src.Load(path)
	if err != nil {
		return 0, err
	}
	img, err := Decode(data, path)
	if err != nil {
		return 0, err
	}
	return l.uploader.CreateTexture(img, s)
}

// Err returns the error recorded for a path that failed to load.
func (l *Loader) Err(path string) error {
	return l.failed[path]
}

// Release deletes every texture the loader uploaded.
func (l *Loader) Release() {
	for path, t := range l.loaded {
		l.uploader.DeleteTexture(&t)
		delete(l.loaded, path)
	}
}

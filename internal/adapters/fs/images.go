package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageLister = (*ImageLister)(nil)

// ImageLister enumerates the files Buildroot leaves in output/images.
type ImageLister struct{}

// NewImageLister creates a new ImageLister.
func NewImageLister() *ImageLister {
	return &ImageLister{}
}

// List returns the regular files directly inside dir, sorted by name, with
// their size and XXHash digest. Subdirectories are skipped.
func (l *ImageLister) List(dir string) ([]domain.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImagesReadFailed.Error()), "path", dir)
	}

	artifacts := make([]domain.Artifact, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks such as Image -> Image-6.6.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		digest, err := fileHash(path)
		if err != nil {
			return nil, err
		}

		artifacts = append(artifacts, domain.Artifact{
			Name:   entry.Name(),
			Path:   path,
			Size:   info.Size(),
			Digest: digest,
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})

	return artifacts, nil
}

func fileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from a directory listing
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrImageHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrImageHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

package ports

import "github.com/intronix/buildroot-imx/internal/core/domain"

// ImageLister defines the interface for enumerating build artifacts.
//
//go:generate mockgen -source=image_lister.go -destination=mocks/mock_image_lister.go -package=mocks
type ImageLister interface {
	// List returns the regular files in dir sorted by name.
	// A missing dir yields an empty list.
	List(dir string) ([]domain.Artifact, error)
}

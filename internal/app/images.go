package app

import (
	"fmt"

	"github.com/intronix/buildroot-imx/internal/core/domain"
)

// listImages prints every artifact in the images directory and the login
// credentials of the resulting root filesystem.
func (a *App) listImages(s *domain.Settings) error {
	artifacts, err := a.images.List(s.Resolve(s.ImagesDir))
	if err != nil {
		return err
	}

	if len(artifacts) == 0 {
		a.logger.Warn("no images found in " + s.ImagesDir)
		return nil
	}

	width := 0
	for _, art := range artifacts {
		width = max(width, len(art.Name))
	}

	_, _ = fmt.Fprintf(a.stdout, "\nImages in %s:\n", s.ImagesDir)
	for _, art := range artifacts {
		_, _ = fmt.Fprintf(a.stdout, "  %-*s  %10s  xxh64:%016x\n", width, art.Name, HumanSize(art.Size), art.Digest)
	}
	_, _ = fmt.Fprintf(a.stdout, "\nLogin: %s / %s\n", s.Login.User, s.Login.Password)

	return nil
}

// HumanSize formats a byte count with binary units.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

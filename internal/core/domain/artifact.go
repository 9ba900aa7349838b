package domain

// Artifact is a file produced in the images directory by a build.
type Artifact struct {
	Name   string
	Path   string
	Size   int64
	Digest uint64
}

package ports

// HostChecker defines the interface for verifying host tools.
//
//go:generate mockgen -source=host_checker.go -destination=mocks/mock_host_checker.go -package=mocks
type HostChecker interface {
	// Missing returns the tools that cannot be found in path, in input order.
	Missing(tools []string, path string) []string
}

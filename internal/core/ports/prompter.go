package ports

// Prompter defines the interface for interactive confirmation.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm asks a yes/no question. Only an explicit yes returns true.
	Confirm(question string) (bool, error)
}

package verify

// Verifier is the interface that wraps the Verify method.
type Verifier interface {
	// Verify reads a data file and checks its records.
	Verify() (Report, error)
}

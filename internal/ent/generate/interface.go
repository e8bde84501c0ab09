package generate

// Generator is the interface that wraps the Generate method.
type Generator interface {
	// Generate creates a data file with random key-value records.
	Generate() error
}

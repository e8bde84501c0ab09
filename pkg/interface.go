package kvdata

import (
	"github.com/gnames/kvdata/internal/ent/generate"
	"github.com/gnames/kvdata/internal/ent/verify"
)

// KVData is an interface for generating and verifying files with random
// key-value records.
type KVData interface {
	// Generate creates a data file with random records.
	Generate(generate.Generator) error

	// Verify checks that a data file follows the record format.
	Verify(verify.Verifier) (verify.Report, error)
}

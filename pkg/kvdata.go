package kvdata

import (
	"github.com/gnames/kvdata/internal/ent/generate"
	"github.com/gnames/kvdata/internal/ent/verify"
	"github.com/gnames/kvdata/pkg/config"
)

// kvdata is an implementation of KVData interface.
type kvdata struct {
	cfg config.Config
}

// New creates a new instance of KVData.
func New(cfg config.Config) KVData {
	res := kvdata{cfg: cfg}
	return &res
}

// Generate creates a data file with random key-value records.
func (k *kvdata) Generate(g generate.Generator) error {
	return g.Generate()
}

// Verify reads a data file and checks its records.
func (k *kvdata) Verify(v verify.Verifier) (verify.Report, error) {
	return v.Verify()
}

package config

import (
	"os"
	"path/filepath"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// OutputPath is a path to the generated data file. The same path is read
	// during verification.
	OutputPath string

	// KVDir is a directory for a temporary key-value store used during
	// verification.
	KVDir string

	// RecordsNum is a number of key-value records in the data file.
	RecordsNum int

	// MaxKeyLen is the largest possible length of a key.
	MaxKeyLen int

	// MaxValueLen is the largest possible length of a value.
	MaxValueLen int

	// ByteOrder is the byte order of length prefixes: "little", "big" or
	// "native".
	ByteOrder string

	// Seed initializes random generator. The same seed creates the same data
	// file. Zero means the seed is taken from the clock.
	Seed int64

	// ProgressEvery sets how often a progress line is printed, 1 means after
	// every record.
	ProgressEvery int

	// Quiet suppresses progress output.
	Quiet bool
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptOutputPath sets the path of the data file.
func OptOutputPath(s string) Option {
	return func(cfg *Config) {
		cfg.OutputPath = s
	}
}

// OptKVDir sets a directory for the key-value store.
func OptKVDir(s string) Option {
	return func(cfg *Config) {
		cfg.KVDir = s
	}
}

// OptRecordsNum sets the number of records.
func OptRecordsNum(i int) Option {
	return func(cfg *Config) {
		cfg.RecordsNum = i
	}
}

// OptMaxKeyLen sets the maximum key length.
func OptMaxKeyLen(i int) Option {
	return func(cfg *Config) {
		cfg.MaxKeyLen = i
	}
}

// OptMaxValueLen sets the maximum value length.
func OptMaxValueLen(i int) Option {
	return func(cfg *Config) {
		cfg.MaxValueLen = i
	}
}

// OptByteOrder sets byte order of length prefixes.
func OptByteOrder(s string) Option {
	return func(cfg *Config) {
		cfg.ByteOrder = s
	}
}

// OptSeed sets the seed of the random generator.
func OptSeed(i int64) Option {
	return func(cfg *Config) {
		cfg.Seed = i
	}
}

// OptProgressEvery sets the frequency of progress lines.
func OptProgressEvery(i int) Option {
	return func(cfg *Config) {
		cfg.ProgressEvery = i
	}
}

// OptQuiet turns off progress output.
func OptQuiet(b bool) Option {
	return func(cfg *Config) {
		cfg.Quiet = b
	}
}

// New creates Config with default values modified by options.
func New(opts ...Option) Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "kvdata")

	res := Config{
		OutputPath:    "data.dat",
		KVDir:         filepath.Join(cacheDir, "keys"),
		RecordsNum:    1024 * 1024,
		MaxKeyLen:     30,
		MaxValueLen:   200,
		ByteOrder:     "little",
		ProgressEvery: 1,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}

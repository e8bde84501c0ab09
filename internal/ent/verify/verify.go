package verify

import "errors"

var (
	// ErrInvalidRecord means a record breaks length or alphabet constraints.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrCount means the number of records differs from the expected one.
	ErrCount = errors.New("unexpected number of records")
)

// Report summarizes a verified data file.
type Report struct {
	// Path is the data file location.
	Path string `json:"path"`

	// ByteOrder of length prefixes.
	ByteOrder string `json:"byteOrder"`

	// Records is the number of records in the file.
	Records int `json:"records"`

	// Bytes is the size of the file.
	Bytes int64 `json:"bytes"`

	// MinKeyLen is the length of the shortest key.
	MinKeyLen int `json:"minKeyLen"`

	// MaxKeyLen is the length of the longest key.
	MaxKeyLen int `json:"maxKeyLen"`

	// MinValueLen is the length of the shortest value.
	MinValueLen int `json:"minValueLen"`

	// MaxValueLen is the length of the longest value.
	MaxValueLen int `json:"maxValueLen"`

	// UniqueKeys is the number of distinct keys.
	UniqueKeys int `json:"uniqueKeys"`

	// DuplicateKeys is the number of records with a key seen before.
	DuplicateKeys int `json:"duplicateKeys"`

	// FirstDuplicate is the first key that appeared in the file more than
	// once. It is empty if all keys are unique.
	FirstDuplicate string `json:"firstDuplicate,omitempty"`

	// FirstDuplicateOrigin is the index of the record where FirstDuplicate
	// appeared for the first time.
	FirstDuplicateOrigin int `json:"firstDuplicateOrigin,omitempty"`

	// FirstDuplicateAt is the index of the record that repeated
	// FirstDuplicate for the first time.
	FirstDuplicateAt int `json:"firstDuplicateAt,omitempty"`
}

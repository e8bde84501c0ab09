package record

import (
	"math/rand/v2"
	"time"
)

// Alphabet contains all symbols allowed in keys and values.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// prefixLen is the size in bytes of a length prefix.
const prefixLen = 4

// Record is a key-value pair as it is written to a data file.
type Record struct {
	// Key is a random alphanumeric string.
	Key string

	// Value is a random alphanumeric string.
	Value string
}

// Size returns the number of bytes the record occupies in a data file,
// including both length prefixes.
func (r Record) Size() int {
	return prefixLen + len(r.Key) + prefixLen + len(r.Value)
}

// New draws a random record. Lengths of the key and the value are uniform in
// [1, maxKey] and [1, maxValue]. The order of draws is key length, key
// symbols, value length, value symbols.
func New(r *rand.Rand, maxKey, maxValue int) Record {
	key := RandomString(r, 1+r.IntN(maxKey))
	val := RandomString(r, 1+r.IntN(maxValue))
	return Record{Key: key, Value: val}
}

// RandomString returns n symbols from Alphabet drawn with replacement.
func RandomString(r *rand.Rand, n int) string {
	res := make([]byte, n)
	for i := range res {
		res[i] = Alphabet[r.IntN(len(Alphabet))]
	}
	return string(res)
}

// NewRand creates a random source. The same seed always gives the same
// sequence. Zero seed means the source is seeded from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// IsAlnum checks if all bytes of s belong to Alphabet.
func IsAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

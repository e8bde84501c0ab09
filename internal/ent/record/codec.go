package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// maxFieldLen guards decoding from allocating huge buffers when a length
// prefix is corrupted.
const maxFieldLen = 1 << 24

var (
	// ErrTruncated is returned when a data file ends in the middle of
	// a record.
	ErrTruncated = errors.New("truncated record")

	// ErrFieldTooLong is returned when a length prefix exceeds maxFieldLen.
	ErrFieldTooLong = errors.New("field length is too large")

	// ErrByteOrder is returned for unknown byte order names.
	ErrByteOrder = errors.New("unknown byte order")
)

// ByteOrder converts a name into byte order for length prefixes.
// Supported names are "little", "big" and "native". Empty name means
// "little".
func ByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "", "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	case "native":
		return binary.NativeEndian, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrByteOrder, name)
	}
}

// Encoder writes records to a stream.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [prefixLen]byte
}

// NewEncoder creates an Encoder that writes length prefixes in the given
// byte order.
func NewEncoder(w io.Writer, order binary.ByteOrder) *Encoder {
	return &Encoder{w: w, order: order}
}

// Encode writes key length, key, value length and value. It returns the
// number of bytes written.
func (e *Encoder) Encode(r Record) (int, error) {
	var res int
	for _, s := range []string{r.Key, r.Value} {
		n, err := e.writeField(s)
		res += n
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (e *Encoder) writeField(s string) (int, error) {
	e.order.PutUint32(e.buf[:], uint32(len(s)))
	n, err := e.w.Write(e.buf[:])
	if err != nil {
		return n, err
	}
	m, err := io.WriteString(e.w, s)
	return n + m, err
}

// Decoder reads records from a stream.
type Decoder struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [prefixLen]byte
}

// NewDecoder creates a Decoder that reads length prefixes in the given
// byte order.
func NewDecoder(r io.Reader, order binary.ByteOrder) *Decoder {
	return &Decoder{r: r, order: order}
}

// Decode reads the next record. It returns io.EOF when the stream ends
// exactly at a record boundary and ErrTruncated if it ends inside a record.
func (d *Decoder) Decode() (Record, error) {
	var res Record
	key, err := d.readField()
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, err
	}
	val, err := d.readField()
	if err == io.EOF {
		return res, ErrTruncated
	}
	if err != nil {
		return res, err
	}
	res.Key = key
	res.Value = val
	return res, nil
}

// readField returns io.EOF only if nothing at all was read.
func (d *Decoder) readField() (string, error) {
	_, err := io.ReadFull(d.r, d.buf[:])
	if err == io.EOF {
		return "", io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		return "", ErrTruncated
	}
	if err != nil {
		return "", err
	}

	n := d.order.Uint32(d.buf[:])
	if n > maxFieldLen {
		return "", fmt.Errorf("%w: %d", ErrFieldTooLong, n)
	}

	res := make([]byte, n)
	_, err = io.ReadFull(d.r, res)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return "", ErrTruncated
	}
	if err != nil {
		return "", err
	}
	return string(res), nil
}

package record_test

import (
	"bytes"
	"encoding/binary"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/kvdata/internal/ent/record"
)

var _ = Describe("Codec", func() {
	Describe("ByteOrder", func() {
		It("knows little, big and native orders", func() {
			o, err := record.ByteOrder("little")
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(binary.ByteOrder(binary.LittleEndian)))

			o, err = record.ByteOrder("")
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(binary.ByteOrder(binary.LittleEndian)))

			o, err = record.ByteOrder("big")
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(binary.ByteOrder(binary.BigEndian)))

			_, err = record.ByteOrder("native")
			Expect(err).ToNot(HaveOccurred())
		})

		It("returns error for unknown order", func() {
			_, err := record.ByteOrder("middle")
			Expect(err).To(MatchError(record.ErrByteOrder))
		})
	})

	Describe("Encode", func() {
		It("writes length-prefixed fields", func() {
			var buf bytes.Buffer
			enc := record.NewEncoder(&buf, binary.LittleEndian)
			n, err := enc.Encode(record.Record{Key: "ab", Value: "xyz"})
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(13))
			Expect(buf.Bytes()).To(Equal([]byte{
				2, 0, 0, 0, 'a', 'b',
				3, 0, 0, 0, 'x', 'y', 'z',
			}))
		})

		It("uses big endian when asked", func() {
			var buf bytes.Buffer
			enc := record.NewEncoder(&buf, binary.BigEndian)
			_, err := enc.Encode(record.Record{Key: "Q", Value: "12345"})
			Expect(err).ToNot(HaveOccurred())
			Expect(buf.Bytes()).To(Equal([]byte{
				0, 0, 0, 1, 'Q',
				0, 0, 0, 5, '1', '2', '3', '4', '5',
			}))
		})

		It("produces 27 bytes for two known records", func() {
			var buf bytes.Buffer
			enc := record.NewEncoder(&buf, binary.NativeEndian)
			recs := []record.Record{
				{Key: "ab", Value: "xyz"},
				{Key: "Q", Value: "12345"},
			}
			for _, r := range recs {
				_, err := enc.Encode(r)
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(buf.Len()).To(Equal(27))
		})
	})

	Describe("Decode", func() {
		var orders = map[string]binary.ByteOrder{
			"little": binary.LittleEndian,
			"big":    binary.BigEndian,
			"native": binary.NativeEndian,
		}

		It("reproduces encoded records", func() {
			for name, order := range orders {
				By(name)
				var buf bytes.Buffer
				enc := record.NewEncoder(&buf, order)
				r := record.NewRand(11)
				recs := make([]record.Record, 100)
				for i := range recs {
					recs[i] = record.New(r, 30, 200)
					_, err := enc.Encode(recs[i])
					Expect(err).ToNot(HaveOccurred())
				}

				dec := record.NewDecoder(&buf, order)
				for i := range recs {
					rec, err := dec.Decode()
					Expect(err).ToNot(HaveOccurred())
					Expect(rec).To(Equal(recs[i]))
				}
				_, err := dec.Decode()
				Expect(err).To(Equal(io.EOF))
			}
		})

		It("returns EOF for empty input", func() {
			dec := record.NewDecoder(bytes.NewReader(nil), binary.LittleEndian)
			_, err := dec.Decode()
			Expect(err).To(Equal(io.EOF))
		})

		It("detects truncated records", func() {
			full := []byte{2, 0, 0, 0, 'a', 'b', 3, 0, 0, 0, 'x', 'y', 'z'}
			for _, cut := range []int{2, 4, 5, 6, 8, 10, 12} {
				dec := record.NewDecoder(
					bytes.NewReader(full[:cut]),
					binary.LittleEndian,
				)
				_, err := dec.Decode()
				Expect(err).To(MatchError(record.ErrTruncated))
			}
		})

		It("refuses huge length prefixes", func() {
			data := []byte{0xff, 0xff, 0xff, 0xff}
			dec := record.NewDecoder(bytes.NewReader(data), binary.LittleEndian)
			_, err := dec.Decode()
			Expect(err).To(MatchError(record.ErrFieldTooLong))
		})
	})
})

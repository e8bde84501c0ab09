package verio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v2"
	"github.com/dustin/go-humanize"
	"github.com/gnames/kvdata/internal/ent/kv"
	"github.com/gnames/kvdata/internal/ent/record"
	"github.com/gnames/kvdata/internal/ent/verify"
	"github.com/gnames/kvdata/internal/str"
	"github.com/gnames/kvdata/pkg/config"
)

// logEvery sets how often verification progress is logged.
const logEvery = 250_000

// verio implements verify.Verifier.
type verio struct {
	cfg   config.Config
	order binary.ByteOrder
	kv    kv.KeyVal
}

// New returns a Verifier for the data file at cfg.OutputPath. The key-value
// store keeps keys that were already seen.
func New(cfg config.Config, keys kv.KeyVal) (verify.Verifier, error) {
	order, err := record.ByteOrder(cfg.ByteOrder)
	if err != nil {
		return nil, err
	}
	res := verio{cfg: cfg, order: order, kv: keys}
	return &res, nil
}

// Verify reads all records and checks their lengths, symbols and number.
// It stops at the first broken record.
func (v *verio) Verify() (verify.Report, error) {
	path := v.cfg.OutputPath
	res := verify.Report{Path: path, ByteOrder: v.cfg.ByteOrder}
	slog.Info("Verifying data file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	err = v.kv.Open()
	if err != nil {
		return res, fmt.Errorf("cannot open key-value store: %w", err)
	}
	defer v.kv.Close()

	kvTxn, err := v.kv.GetTransaction()
	if err != nil {
		return res, err
	}
	defer func() {
		if kvTxn != nil {
			kvTxn.Discard()
		}
	}()

	dec := record.NewDecoder(bufio.NewReaderSize(f, 1<<20), v.order)
	for {
		rec, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("record %d: %w", res.Records, err)
		}

		if err = v.check(rec); err != nil {
			return res, fmt.Errorf("record %d: %w", res.Records, err)
		}
		v.addStats(&res, rec)

		var dup bool
		dup, kvTxn, err = v.seenKey(rec.Key, res.Records, kvTxn)
		if err != nil {
			return res, err
		}
		if dup {
			if res.DuplicateKeys == 0 {
				res.FirstDuplicate = rec.Key
				res.FirstDuplicateAt = res.Records
			}
			res.DuplicateKeys++
		} else {
			res.UniqueKeys++
		}

		res.Records++
		if res.Records%logEvery == 0 {
			slog.Info("Verified records", "records", humanize.Comma(int64(res.Records)))
		}
	}

	if err = kvTxn.Commit(); err != nil {
		return res, fmt.Errorf("cannot commit key-value transaction: %w", err)
	}

	if res.DuplicateKeys > 0 {
		res.FirstDuplicateOrigin, err = v.keyOrigin(res.FirstDuplicate)
		if err != nil {
			return res, err
		}
	}

	if res.Records != v.cfg.RecordsNum {
		return res, fmt.Errorf("%w: expected %d, got %d",
			verify.ErrCount, v.cfg.RecordsNum, res.Records)
	}

	slog.Info("Data file is valid",
		"records", humanize.Comma(int64(res.Records)),
		"size", humanize.Bytes(uint64(res.Bytes)),
		"duplicates", humanize.Comma(int64(res.DuplicateKeys)),
	)
	return res, nil
}

func (v *verio) check(rec record.Record) error {
	if l := len(rec.Key); l < 1 || l > v.cfg.MaxKeyLen {
		return fmt.Errorf("%w: key '%s' has length %d",
			verify.ErrInvalidRecord, str.Short(rec.Key, 40), l)
	}
	if l := len(rec.Value); l < 1 || l > v.cfg.MaxValueLen {
		return fmt.Errorf("%w: value length %d", verify.ErrInvalidRecord, l)
	}
	if !record.IsAlnum(rec.Key) {
		return fmt.Errorf("%w: key '%s' is not alphanumeric",
			verify.ErrInvalidRecord, str.Short(rec.Key, 40))
	}
	if !record.IsAlnum(rec.Value) {
		return fmt.Errorf("%w: value is not alphanumeric", verify.ErrInvalidRecord)
	}
	return nil
}

func (*verio) addStats(res *verify.Report, rec record.Record) {
	kl, vl := len(rec.Key), len(rec.Value)
	if res.Records == 0 {
		res.MinKeyLen, res.MaxKeyLen = kl, kl
		res.MinValueLen, res.MaxValueLen = vl, vl
	}
	res.MinKeyLen = min(res.MinKeyLen, kl)
	res.MaxKeyLen = max(res.MaxKeyLen, kl)
	res.MinValueLen = min(res.MinValueLen, vl)
	res.MaxValueLen = max(res.MaxValueLen, vl)
	res.Bytes += int64(rec.Size())
}

// keyOrigin returns the index of the record where the key was met first.
func (v *verio) keyOrigin(key string) (int, error) {
	val, err := v.kv.GetValue([]byte(key))
	if err != nil {
		return 0, fmt.Errorf("cannot get key '%s': %w", key, err)
	}
	return strconv.Atoi(string(val))
}

// seenKey reports if the key was met before. A new key is saved with the
// index of its record. When the transaction grows too big it is committed
// and replaced by a new one.
func (v *verio) seenKey(
	key string,
	idx int,
	kvTxn *badger.Txn,
) (bool, *badger.Txn, error) {
	k := []byte(key)
	val := []byte(strconv.Itoa(idx))
	_, err := kvTxn.Get(k)
	if err == nil {
		return true, kvTxn, nil
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return false, kvTxn, err
	}

	err = kvTxn.Set(k, val)
	if errors.Is(err, badger.ErrTxnTooBig) {
		if err = kvTxn.Commit(); err != nil {
			return false, kvTxn, err
		}
		if kvTxn, err = v.kv.GetTransaction(); err != nil {
			return false, nil, err
		}
		err = kvTxn.Set(k, val)
	}
	if err != nil {
		return false, kvTxn, err
	}
	return false, kvTxn, nil
}

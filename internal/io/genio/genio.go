package genio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnsys"
	"github.com/gnames/kvdata/internal/ent/generate"
	"github.com/gnames/kvdata/internal/ent/record"
	"github.com/gnames/kvdata/pkg/config"
)

// bufSize is the size of the write buffer for the data file.
const bufSize = 1 << 20

// ErrConfig is returned when settings cannot produce valid records.
var ErrConfig = errors.New("invalid generator settings")

// genio implements generate.Generator.
type genio struct {
	cfg      config.Config
	order    binary.ByteOrder
	rnd      *rand.Rand
	progress io.Writer
}

// New returns a Generator. Random symbols come from rnd, progress lines are
// written to progress.
func New(
	cfg config.Config,
	rnd *rand.Rand,
	progress io.Writer,
) (generate.Generator, error) {
	if cfg.MaxKeyLen < 1 || cfg.MaxValueLen < 1 {
		return nil, fmt.Errorf(
			"%w: max key length %d, max value length %d",
			ErrConfig, cfg.MaxKeyLen, cfg.MaxValueLen,
		)
	}
	if cfg.RecordsNum < 0 {
		return nil, fmt.Errorf("%w: records number %d", ErrConfig, cfg.RecordsNum)
	}
	if cfg.ProgressEvery < 1 {
		cfg.ProgressEvery = 1
	}
	order, err := record.ByteOrder(cfg.ByteOrder)
	if err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = record.NewRand(cfg.Seed)
	}
	if progress == nil {
		progress = io.Discard
	}

	res := genio{
		cfg:      cfg,
		order:    order,
		rnd:      rnd,
		progress: progress,
	}
	return &res, nil
}

// Generate creates (or truncates) the data file and fills it with
// cfg.RecordsNum random records.
func (g *genio) Generate() error {
	path := g.cfg.OutputPath
	slog.Info("Generating data file",
		"path", path,
		"records", humanize.Comma(int64(g.cfg.RecordsNum)),
		"byte-order", g.cfg.ByteOrder,
	)

	err := gnsys.MakeDir(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("cannot create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	timeStart := time.Now()
	w := bufio.NewWriterSize(f, bufSize)
	size, err := g.writeRecords(w)
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", path, err)
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("cannot flush %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", path, err)
	}

	slog.Info("Data file is created",
		"path", path,
		"records", humanize.Comma(int64(g.cfg.RecordsNum)),
		"size", humanize.Bytes(uint64(size)),
		"duration", time.Since(timeStart).Round(time.Millisecond),
	)
	return nil
}

// writeRecords generates records one at a time and serializes them right
// away. It returns the number of written bytes.
func (g *genio) writeRecords(w io.Writer) (int64, error) {
	var size int64
	enc := record.NewEncoder(w, g.order)
	total := g.cfg.RecordsNum
	for i := 0; i < total; i++ {
		rec := record.New(g.rnd, g.cfg.MaxKeyLen, g.cfg.MaxValueLen)
		n, err := enc.Encode(rec)
		size += int64(n)
		if err != nil {
			return size, err
		}
		g.showProgress(i, total)
	}
	return size, nil
}

// showProgress prints "<index> <total>" for every ProgressEvery record and
// for the last one.
func (g *genio) showProgress(i, total int) {
	if g.cfg.Quiet {
		return
	}
	if i%g.cfg.ProgressEvery != 0 && i != total-1 {
		return
	}
	fmt.Fprintf(g.progress, "%d %d\n", i, total)
}

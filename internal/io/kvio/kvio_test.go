package kvio_test

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/kvdata/internal/io/kvio"
)

var _ = Describe("Kvio", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "kvio")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(dir)
	})

	It("cleans old data on creation", func() {
		stale := filepath.Join(dir, "stale.txt")
		Expect(os.WriteFile(stale, []byte("x"), 0644)).To(Succeed())
		_, err := kvio.New(dir)
		Expect(err).ToNot(HaveOccurred())
		_, err = os.Stat(stale)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("refuses transactions before Open", func() {
		kv, err := kvio.New(dir)
		Expect(err).ToNot(HaveOccurred())
		_, err = kv.GetTransaction()
		Expect(err).To(MatchError(kvio.ErrNotOpen))
		_, err = kv.GetValue([]byte("k"))
		Expect(err).To(MatchError(kvio.ErrNotOpen))
		Expect(kv.Close()).To(Succeed())
	})

	It("saves and returns values", func() {
		kv, err := kvio.New(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(kv.Open()).To(Succeed())
		defer kv.Close()

		txn, err := kv.GetTransaction()
		Expect(err).ToNot(HaveOccurred())
		Expect(txn.Set([]byte("abc"), []byte("1"))).To(Succeed())
		Expect(txn.Commit()).To(Succeed())

		val, err := kv.GetValue([]byte("abc"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(val)).To(Equal("1"))

		val, err = kv.GetValue([]byte("nope"))
		Expect(err).ToNot(HaveOccurred())
		Expect(val).To(BeNil())
	})

	It("limits transactions by table size", func() {
		kv, err := kvio.New(dir, kvio.OptMaxTableSize(1<<20))
		Expect(err).ToNot(HaveOccurred())
		Expect(kv.Open()).To(Succeed())
		defer kv.Close()

		txn, err := kv.GetTransaction()
		Expect(err).ToNot(HaveOccurred())
		defer txn.Discard()

		var tooBig bool
		for i := 0; i < 20_000; i++ {
			err = txn.Set([]byte(fmt.Sprintf("key%05d", i)), []byte("1"))
			if err != nil {
				Expect(err).To(MatchError(badger.ErrTxnTooBig))
				tooBig = true
				break
			}
		}
		Expect(tooBig).To(BeTrue())
	})
})

package addrinfo

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dchest/siphash"
)

var hashSecrets [2]uint64

// The secrets only need to be stable for the life of the process as hashes are never
// persisted or compared across processes.
func init() {
	b := make([]byte, 16)
	rand.Read(b)
	hashSecrets[0] = binary.BigEndian.Uint64(b[:8])
	hashSecrets[1] = binary.BigEndian.Uint64(b[8:])
}

func hashRecord(r Record) uint64 {
	var b [21]byte
	b[0] = byte(r.SocketType)
	b[1] = byte(r.Protocol)
	if r.Address.Is4() {
		b[2] = 4
	}
	a16 := r.Address.As16()
	copy(b[3:19], a16[:])
	binary.BigEndian.PutUint16(b[19:], r.Port)

	return siphash.Hash(hashSecrets[0], hashSecrets[1], b[:])
}

// Result accumulates Records in first-seen order with duplicates discarded. Records are
// bucketed by a keyed hash and compared structurally within each bucket so a hash
// collision never merges two distinct records.
//
// A Result is not concurrency safe. It is built by a single chain evaluation and is
// treated as read-only once returned.
type Result struct {
	canonical string
	records   []Record
	index     map[uint64][]int // Hash -> offsets into records
}

func NewResult() *Result {
	return &Result{index: make(map[uint64][]int)}
}

// Add appends the record if it is not already present. Return true if it was added.
func (t *Result) Add(r Record) bool {
	h := hashRecord(r)
	for _, ix := range t.index[h] {
		if t.records[ix] == r {
			return false
		}
	}
	t.index[h] = append(t.index[h], len(t.records))
	t.records = append(t.records, r)

	return true
}

// AddAll adds each record in turn and returns the number actually added.
func (t *Result) AddAll(recs []Record) (added int) {
	for _, r := range recs {
		if t.Add(r) {
			added++
		}
	}

	return
}

// SetCanonical records the canonical name unless one is already present; the first
// source to supply a name wins.
func (t *Result) SetCanonical(name string) {
	if len(t.canonical) == 0 {
		t.canonical = name
	}
}

func (t *Result) Canonical() string {
	return t.canonical
}

func (t *Result) Len() int {
	return len(t.records)
}

// Records returns a copy of the accumulated records in first-seen order.
func (t *Result) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Contains returns true if an equal record is present.
func (t *Result) Contains(r Record) bool {
	for _, ix := range t.index[hashRecord(r)] {
		if t.records[ix] == r {
			return true
		}
	}

	return false
}

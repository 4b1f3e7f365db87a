// Package bbolt implements the ports.History interface using bbolt (embedded B+ tree).
// Entries live in a single "history" bucket keyed by the bucket's monotonic
// sequence, big-endian encoded so cursor order is insertion order. Writes are
// transactional, so a crash mid-write cannot corrupt committed entries.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/corey/unitconv/internal/ports"
	"github.com/jonboulle/clockwork"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketHistory = []byte("history")
)

// DefaultLimit is the retention limit used when none is configured.
const DefaultLimit = 100

// Store implements ports.History backed by bbolt.
type Store struct {
	db    *bolt.DB
	limit int
	clock clockwork.Clock
}

var _ ports.History = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLimit caps the number of retained entries. Non-positive values keep
// the default.
func WithLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithClock overrides the timestamp source for recorded entries.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string, opts ...Option) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	s := &Store{db: db, limit: DefaultLimit, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IsLocked reports whether err is a bbolt file-lock timeout, meaning another
// process holds the database open.
func IsLocked(err error) bool {
	return errors.Is(err, bolt.ErrTimeout)
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func sequenceKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

// Record appends an entry and trims the oldest entries beyond the limit.
// ID is assigned from the bucket sequence; At is filled in when zero.
func (s *Store) Record(entry ports.HistoryEntry) error {
	if entry.At.IsZero() {
		entry.At = s.clock.Now().UTC()
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketHistory)
		if err != nil {
			return err
		}
		id, err := b.NextSequence()
		if err != nil {
			return err
		}
		entry.ID = id

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal history entry: %w", err)
		}
		if err := b.Put(sequenceKey(id), data); err != nil {
			return err
		}
		return trim(b, s.limit)
	})
}

// trim deletes the oldest keys until at most limit remain.
func trim(b *bolt.Bucket, limit int) error {
	c := b.Cursor()
	n := 0
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	excess := n - limit
	if excess <= 0 {
		return nil
	}
	var stale [][]byte
	for k, _ := c.First(); k != nil && len(stale) < excess; k, _ = c.Next() {
		stale = append(stale, append([]byte(nil), k...))
	}
	for _, k := range stale {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]ports.HistoryEntry, error) {
	var entries []ports.HistoryEntry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			// Unmarshal copies out of v; bbolt slices are only valid within tx.
			var e ports.HistoryEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal history entry %d: %w", binary.BigEndian.Uint64(k), err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes all history. Idempotent: clearing an empty store is not an error.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketHistory); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}

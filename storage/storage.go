package storage

import "errors"

var (
	ErrOutOfRange    = errors.New("out of range")
	ErrNotFound      = errors.New("not found")
	ErrEmpty         = errors.New("empty")
	ErrInvalidDigest = errors.New("invalid digest")
	ErrCorrupted     = errors.New("corrupted")
)

// KvStore is the key-value backend of a LeafStore
type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	// Write applies all puts of the batch atomically
	Write(batch *Batch) error
	Close() error
}

// Batch collects puts that must land together
type Batch struct {
	puts []kv
}

type kv struct {
	key   []byte
	value []byte
}

// Put queues a put
func (b *Batch) Put(key, value []byte) {
	b.puts = append(b.puts, kv{key: key, value: value})
}

// Len returns the number of queued puts
func (b *Batch) Len() int {
	return len(b.puts)
}

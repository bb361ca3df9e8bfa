package storage

import "sync"

// MemoryStore keeps everything in a map. It is used by tests and by servers
// started without a database directory.
type MemoryStore struct {
	mu   sync.RWMutex
	vals map[string][]byte
}

func NewMemoryStore() KvStore {
	return &MemoryStore{vals: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.vals[string(key)]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), val...), nil
}

func (m *MemoryStore) Put(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vals[string(key)] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Write(batch *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range batch.puts {
		m.vals[string(p.key)] = append([]byte(nil), p.value...)
	}

	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

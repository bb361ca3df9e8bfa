package storage

import (
	"errors"
	"fmt"

	"github.com/frankonly/hashtree/crypto"
)

// LeafStore persists raw leaves in append order together with an index from
// leaf digest to the first position holding that leaf.
type LeafStore struct {
	db   KvStore
	size uint64
}

func NewLeafStore(db KvStore) (*LeafStore, error) {
	store := &LeafStore{db: db}

	res, err := db.Get(sizeKey())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		if err := db.Put(sizeKeyValue(0)); err != nil {
			return nil, err
		}

		return store, nil
	}

	store.size, err = decodeUint64(res)
	if err != nil {
		return nil, fmt.Errorf("failed to read size: %w", err)
	}

	return store, nil
}

// Size returns the number of stored leaves
func (s *LeafStore) Size() uint64 {
	return s.size
}

// Append stores leaf at the next position and returns that position
func (s *LeafStore) Append(leaf []byte) (uint64, error) {
	id := s.size
	hash := crypto.HashLeaf(leaf)

	batch := new(Batch)
	batch.Put(leafKey(id), leaf)

	// keep the first position of duplicated leaves
	if _, err := s.db.Get(hashIndexKey(hash)); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return 0, err
		}
		batch.Put(hashIndexKeyValue(hash, id))
	}

	batch.Put(sizeKeyValue(id + 1))
	if err := s.db.Write(batch); err != nil {
		return 0, err
	}

	s.size++
	return id, nil
}

// Get returns the leaf at id
func (s *LeafStore) Get(id uint64) ([]byte, error) {
	if id >= s.size {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, id)
	}

	return s.db.Get(leafKey(id))
}

// Search returns the first position of leaf
func (s *LeafStore) Search(leaf []byte) (uint64, error) {
	return s.SearchDigest(crypto.HashLeaf(leaf))
}

// SearchDigest returns the first position of the leaf with the given leaf digest
func (s *LeafStore) SearchDigest(hash []byte) (uint64, error) {
	if len(hash) != crypto.DigestSize {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidDigest, len(hash))
	}

	res, err := s.db.Get(hashIndexKey(hash))
	if err != nil {
		return 0, err
	}

	id, err := decodeUint64(res)
	if err != nil {
		return 0, err
	}

	// only positions below size are committed
	if id >= s.size {
		return 0, fmt.Errorf("%w: %x", ErrNotFound, hash)
	}

	return id, nil
}

// Leaves loads every stored leaf in order
func (s *LeafStore) Leaves() ([][]byte, error) {
	leaves := make([][]byte, s.size)
	for i := range leaves {
		leaf, err := s.db.Get(leafKey(uint64(i)))
		if err != nil {
			return nil, fmt.Errorf("failed to load leaf %d: %w", i, err)
		}
		leaves[i] = leaf
	}

	return leaves, nil
}

func (s *LeafStore) Close() error {
	return s.db.Close()
}

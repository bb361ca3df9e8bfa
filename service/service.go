// Package service keeps a hash tree in sync with a persistent leaf store and
// serialises access to it: appends take the write lock, reads share the read
// lock.
package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/frankonly/hashtree/merkle"
	"github.com/frankonly/hashtree/storage"
)

type Service struct {
	mu     sync.RWMutex
	tree   *merkle.Tree
	store  *storage.LeafStore
	logger *zap.SugaredLogger
}

// Open loads all leaves from db and rebuilds the tree. An empty db is valid;
// read operations return storage.ErrEmpty until the first append.
func Open(db storage.KvStore, logger *zap.SugaredLogger) (*Service, error) {
	store, err := storage.NewLeafStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to open leaf store: %w", err)
	}

	s := &Service{store: store, logger: logger}
	if store.Size() == 0 {
		logger.Infow("opened empty tree")
		return s, nil
	}

	leaves, err := store.Leaves()
	if err != nil {
		return nil, err
	}

	s.tree, err = merkle.New(leaves)
	if err != nil {
		return nil, err
	}

	logger.Infow("rebuilt tree", "leaves", s.tree.LeafCount(), "depth", s.tree.Depth(), "root", rootField(s.tree.Root()))
	return s, nil
}

// Append stores leaf, adds it to the tree and returns its index with the new root
func (s *Service) Append(leaf []byte) (uint64, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.Append(leaf)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to persist leaf: %w", err)
	}

	if s.tree == nil {
		if s.tree, err = merkle.New([][]byte{leaf}); err != nil {
			return 0, nil, err
		}
	} else {
		s.tree.AddLeaf(leaf)
	}

	root := s.tree.Root()
	s.logger.Debugw("appended leaf", "id", id, "root", rootField(root))
	return id, root, nil
}

// Root returns the current root
func (s *Service) Root() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tree == nil {
		return nil, storage.ErrEmpty
	}

	return s.tree.Root(), nil
}

// Size returns the number of leaves
func (s *Service) Size() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Size()
}

// Proof returns the proof of the leaf at id together with the root it proves against
func (s *Service) Proof(id uint64) (merkle.Proof, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.proof(id)
}

// ProofByLeaf finds leaf and returns its index, proof and root
func (s *Service) ProofByLeaf(leaf []byte) (uint64, merkle.Proof, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, err := s.store.Search(leaf)
	if err != nil {
		return 0, nil, nil, err
	}

	proof, root, err := s.proof(id)
	return id, proof, root, err
}

func (s *Service) proof(id uint64) (merkle.Proof, []byte, error) {
	if s.tree == nil {
		return nil, nil, fmt.Errorf("%w: %d", storage.ErrOutOfRange, id)
	}

	proof, err := s.tree.Proof(id)
	if errors.Is(err, merkle.ErrOutOfRange) {
		return nil, nil, fmt.Errorf("%w: %d", storage.ErrOutOfRange, id)
	}
	if err != nil {
		return nil, nil, err
	}

	return proof, s.tree.Root(), nil
}

// Search returns the first index of leaf
func (s *Service) Search(leaf []byte) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Search(leaf)
}

// Get returns the raw leaf at id
func (s *Service) Get(id uint64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Get(id)
}

// Verify checks proof for leaf against root. It does not need the tree.
func (s *Service) Verify(root, leaf []byte, proof merkle.Proof) bool {
	valid := merkle.Verify(root, leaf, proof)
	if !valid {
		s.logger.Debugw("proof rejected", "root", rootField(root), "path", len(proof))
	}

	return valid
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Infow("closing", "leaves", s.store.Size())
	return s.store.Close()
}

func rootField(root []byte) string {
	return fmt.Sprintf("%x", root)
}

package storage

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frankonly/hashtree/crypto"
)

func TestLeafStoreEmpty(t *testing.T) {
	r := require.New(t)

	store, err := NewLeafStore(NewMemoryStore())
	r.NoError(err)
	r.Zero(store.Size())

	_, err = store.Get(0)
	r.True(errors.Is(err, ErrOutOfRange))
	_, err = store.Get(rand.Uint64())
	r.True(errors.Is(err, ErrOutOfRange))

	_, err = store.Search([]byte("missing"))
	r.True(errors.Is(err, ErrNotFound))

	leaves, err := store.Leaves()
	r.NoError(err)
	r.Empty(leaves)

	r.NoError(store.Close())
}

func TestLeafStoreRW(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	store, err := NewLeafStore(NewMemoryStore())
	r.NoError(err)

	leaves := make([][]byte, 257)
	for i := range leaves {
		leaves[i] = []byte(fmt.Sprintf("record-%d-%d", i, rand.Int63()))

		id, err := store.Append(leaves[i])
		r.NoError(err)
		r.EqualValues(i, id)
		r.EqualValues(i+1, store.Size())

		leaf, err := store.Get(id)
		r.NoError(err)
		r.Equal(leaves[i], leaf)

		id, err = store.Search(leaves[i])
		r.NoError(err)
		r.EqualValues(i, id)

		id, err = store.SearchDigest(crypto.HashLeaf(leaves[i]))
		r.NoError(err)
		r.EqualValues(i, id)
	}

	loaded, err := store.Leaves()
	r.NoError(err)
	r.Equal(leaves, loaded)

	_, err = store.SearchDigest([]byte{1, 2, 3})
	r.True(errors.Is(err, ErrInvalidDigest))

	r.NoError(store.Close())
}

func TestLeafStoreDuplicate(t *testing.T) {
	r := require.New(t)

	store, err := NewLeafStore(NewMemoryStore())
	r.NoError(err)

	for _, leaf := range []string{"a", "b", "a", "a"} {
		_, err := store.Append([]byte(leaf))
		r.NoError(err)
	}

	id, err := store.Search([]byte("a"))
	r.NoError(err)
	r.EqualValues(0, id)

	id, err = store.Search([]byte("b"))
	r.NoError(err)
	r.EqualValues(1, id)
}

func TestLeafStoreLoad(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), testDB)

	var leaves [][]byte
	for i := 0; i < 33; i++ {
		db, err := NewLevelDB(path)
		r.NoError(err)

		store, err := NewLeafStore(db)
		r.NoError(err)
		r.EqualValues(i, store.Size())

		loaded, err := store.Leaves()
		r.NoError(err)
		r.Len(loaded, len(leaves))
		for j := range leaves {
			r.Equal(leaves[j], loaded[j])
		}

		leaf := []byte(fmt.Sprintf("leaf-%d", i))
		id, err := store.Append(leaf)
		r.NoError(err)
		r.EqualValues(i, id)
		leaves = append(leaves, leaf)

		r.NoError(store.Close())
	}
}

func TestLeafStoreCorruptedSize(t *testing.T) {
	r := require.New(t)

	db := NewMemoryStore()
	r.NoError(db.Put(sizeKey(), []byte{1, 2, 3}))

	_, err := NewLeafStore(db)
	r.True(errors.Is(err, ErrCorrupted))
}

package merkle

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frankonly/hashtree/crypto"
)

func leavesOf(values ...string) [][]byte {
	leaves := make([][]byte, len(values))
	for i, v := range values {
		leaves[i] = []byte(v)
	}
	return leaves
}

func randomLeaves(n int) [][]byte {
	leaves := make([][]byte, n)
	for i := range leaves {
		leaves[i] = make([]byte, 1+rand.Intn(64))
		rand.Read(leaves[i])
	}
	return leaves
}

// testRoot recomputes the root recursively, only used for verifying the correctness
func testRoot(hashes [][]byte) []byte {
	if len(hashes) == 1 {
		return hashes[0]
	}

	parents := make([][]byte, len(hashes)/2+len(hashes)%2)
	for i := range parents {
		if 2*i+1 == len(hashes) {
			parents[i] = hashes[2*i]
		} else {
			parents[i] = crypto.HashNodes(hashes[2*i], hashes[2*i+1])
		}
	}

	return testRoot(parents)
}

func TestNewEmpty(t *testing.T) {
	r := require.New(t)

	tree, err := New(nil)
	r.Nil(tree)
	r.True(errors.Is(err, ErrEmptyInput))

	tree, err = New([][]byte{})
	r.Nil(tree)
	r.True(errors.Is(err, ErrEmptyInput))
}

func TestNewLayers(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	for n := 1; n <= 70; n++ {
		leaves := randomLeaves(n)
		tree, err := New(leaves)
		r.NoError(err)

		layers := tree.Layers()
		r.Len(layers[0], n)
		r.Len(layers[len(layers)-1], 1)
		r.Equal(len(layers), tree.Depth())
		r.EqualValues(n, tree.LeafCount())

		for i := 0; i+1 < len(layers); i++ {
			r.Len(layers[i+1], (len(layers[i])+1)/2)
		}

		for i, leaf := range leaves {
			r.Equal(crypto.HashLeaf(leaf), layers[0][i])
		}

		r.Equal(testRoot(layers[0]), tree.Root())
	}
}

func TestABCD(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a", "b", "c", "d"))
	r.NoError(err)

	a := crypto.HashLeaf([]byte("a"))
	b := crypto.HashLeaf([]byte("b"))
	c := crypto.HashLeaf([]byte("c"))
	d := crypto.HashLeaf([]byte("d"))
	ab := crypto.HashNodes(a, b)
	cd := crypto.HashNodes(c, d)

	layers := tree.Layers()
	r.Len(layers, 3)
	r.Equal([][]byte{a, b, c, d}, layers[0])
	r.Equal([][]byte{ab, cd}, layers[1])
	r.Equal(crypto.HashNodes(ab, cd), tree.Root())
	r.Equal("33376a3bd63e9993708a84ddfe6c28ae58b83505dd1fed711bd924ec5a6239f0", hex.EncodeToString(tree.Root()))

	proof, err := tree.Proof(2)
	r.NoError(err)
	r.Equal(Proof{{Hash: d, IsLeft: false}, {Hash: ab, IsLeft: true}}, proof)
	r.True(Verify(tree.Root(), []byte("c"), proof))
	r.False(Verify(tree.Root(), []byte("d"), proof))
}

func TestOddPromotion(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a", "b", "c"))
	r.NoError(err)

	layers := tree.Layers()
	r.Len(layers, 3)
	r.Len(layers[0], 3)
	r.Len(layers[1], 2)
	r.Len(layers[2], 1)

	c := crypto.HashLeaf([]byte("c"))
	r.Equal(c, layers[1][1])
	r.Equal("36642e73c2540ab121e3a6bf9545b0a24982cd830eb13d3cd19de3ce6c021ec1", hex.EncodeToString(tree.Root()))

	// the promoted leaf skips the layer it has no sibling in
	proof, err := tree.Proof(2)
	r.NoError(err)
	r.Len(proof, 1)
	r.True(proof[0].IsLeft)
	r.True(Verify(tree.Root(), []byte("c"), proof))
}

func TestSingleLeaf(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("test"))
	r.NoError(err)
	r.Equal(1, tree.Depth())
	r.Equal(crypto.HashLeaf([]byte("test")), tree.Root())

	proof, err := tree.Proof(0)
	r.NoError(err)
	r.Empty(proof)
	r.True(Verify(tree.Root(), []byte("test"), proof))
	r.False(Verify(tree.Root(), []byte("tset"), proof))
}

func TestRootIdempotent(t *testing.T) {
	r := require.New(t)

	tree, err := New(randomLeaves(17))
	r.NoError(err)

	root := tree.Root()
	r.Equal(root, tree.Root())

	// callers cannot reach into the tree through returned slices
	root[0] ^= 0xff
	r.NotEqual(root, tree.Root())
}

func TestProofAll(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	for n := 1; n <= 65; n++ {
		leaves := randomLeaves(n)
		tree, err := New(leaves)
		r.NoError(err)
		root := tree.Root()

		for i, leaf := range leaves {
			proof, err := tree.Proof(uint64(i))
			r.NoError(err)
			r.LessOrEqual(len(proof), tree.Depth()-1)
			r.True(Verify(root, leaf, proof), "n=%d i=%d", n, i)

			other := append([]byte("x"), leaf...)
			r.False(Verify(root, other, proof), "n=%d i=%d", n, i)
		}
	}
}

func TestProofOutOfRange(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a", "b", "c"))
	r.NoError(err)

	for _, index := range []uint64{3, 4, 1 << 40} {
		_, err := tree.Proof(index)
		r.Error(err)
		r.True(errors.Is(err, ErrOutOfRange))
	}

	_, err = tree.Leaf(3)
	r.True(errors.Is(err, ErrOutOfRange))
}

func TestAddLeaf(t *testing.T) {
	r := require.New(t)
	rand.Seed(time.Now().UnixNano())

	leaves := randomLeaves(1)
	tree, err := New(leaves)
	r.NoError(err)

	for i := 1; i < 40; i++ {
		oldRoot := tree.Root()
		leaf := []byte(fmt.Sprintf("leaf-%d", i))
		leaves = append(leaves, leaf)
		tree.AddLeaf(leaf)

		r.EqualValues(len(leaves), tree.LeafCount())
		r.NotEqual(oldRoot, tree.Root())

		rebuilt, err := New(leaves)
		r.NoError(err)
		r.Equal(rebuilt.Layers(), tree.Layers())

		proof, err := tree.Proof(uint64(i))
		r.NoError(err)
		r.True(Verify(tree.Root(), leaf, proof))

		id := uint64(rand.Intn(len(leaves)))
		proof, err = tree.Proof(id)
		r.NoError(err)
		r.True(Verify(tree.Root(), leaves[id], proof))
	}
}

func TestAddLeafInvalidatesProof(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a", "b", "c", "d"))
	r.NoError(err)

	proof, err := tree.Proof(0)
	r.NoError(err)
	r.True(Verify(tree.Root(), []byte("a"), proof))

	tree.AddLeaf([]byte("e"))
	r.Equal("fe14a5426fbd70c0fa73f52342afed0da0bd23c4838662ccf6b88a3070ead97b", hex.EncodeToString(tree.Root()))
	r.False(Verify(tree.Root(), []byte("a"), proof))

	proof, err = tree.Proof(4)
	r.NoError(err)
	r.Len(proof, 1)
	r.True(Verify(tree.Root(), []byte("e"), proof))
}

func TestString(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a", "b", "c"))
	r.NoError(err)

	out := tree.String()
	r.Contains(out, "layer 0: "+hex.EncodeToString(crypto.HashLeaf([]byte("a"))))
	r.Contains(out, "layer 2: "+hex.EncodeToString(tree.Root()))
}

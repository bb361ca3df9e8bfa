package merkle

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestBundle(t *testing.T) {
	r := require.New(t)

	leaves := leavesOf("a", "b", "c", "d", "e")
	tree, err := New(leaves)
	r.NoError(err)

	bundle, err := tree.NewBundle(2, leaves[2])
	r.NoError(err)
	r.True(bundle.Verify())

	data, err := bundle.MarshalBinary()
	r.NoError(err)

	again, err := bundle.MarshalBinary()
	r.NoError(err)
	r.Equal(data, again)

	decoded := &Bundle{}
	r.NoError(decoded.UnmarshalBinary(data))
	r.Equal(bundle.Index, decoded.Index)
	r.Equal(bundle.Root, decoded.Root)
	r.Equal(bundle.Leaf, decoded.Leaf)
	r.Equal(bundle.Proof, decoded.Proof)
	r.True(decoded.Verify())

	decoded.Leaf = []byte("z")
	r.False(decoded.Verify())

	r.Error(decoded.UnmarshalBinary([]byte{0xff, 0x00}))
}

func TestBundleLayout(t *testing.T) {
	r := require.New(t)

	leaves := leavesOf("a", "b", "c")
	tree, err := New(leaves)
	r.NoError(err)

	bundle, err := tree.NewBundle(1, leaves[1])
	r.NoError(err)

	data, err := bundle.MarshalBinary()
	r.NoError(err)

	// a plain integer keyed map, readable without this package
	var fields map[uint64]interface{}
	r.NoError(cbor.Unmarshal(data, &fields))
	r.Len(fields, 4)
	r.EqualValues(1, fields[1])
	r.Equal([]byte("b"), fields[2])
	r.Equal(tree.Root(), fields[3])
	r.Len(fields[4], len(bundle.Proof))

	// single leaf trees have an empty proof which is omitted
	single, err := New(leavesOf("a"))
	r.NoError(err)
	bundle, err = single.NewBundle(0, []byte("a"))
	r.NoError(err)

	data, err = bundle.MarshalBinary()
	r.NoError(err)
	fields = nil
	r.NoError(cbor.Unmarshal(data, &fields))
	r.Len(fields, 3)

	decoded := &Bundle{}
	r.NoError(decoded.UnmarshalBinary(data))
	r.Empty(decoded.Proof)
	r.True(decoded.Verify())
}

func TestBundleOutOfRange(t *testing.T) {
	r := require.New(t)

	tree, err := New(leavesOf("a"))
	r.NoError(err)

	_, err = tree.NewBundle(1, []byte("a"))
	r.ErrorIs(err, ErrOutOfRange)
}

// Package merkle implements a layered binary hash tree over an ordered list
// of leaves, with membership proofs that can be checked against the root alone.
//
// Layer 0 holds the leaf digests. Each layer above pairs the previous one left
// to right; an odd trailing node is promoted to the next layer unchanged. The
// last layer holds the root.
package merkle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frankonly/hashtree/crypto"
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrOutOfRange = errors.New("out of range")
)

// Tree is a binary hash tree. The zero value is not usable, build trees with
// New. Concurrent readers are safe only while no AddLeaf is running.
type Tree struct {
	layers [][][]byte
}

// New builds a tree from leaves. At least one leaf is required.
func New(leaves [][]byte) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyInput
	}

	hashes := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		hashes[i] = crypto.HashLeaf(leaf)
	}

	t := &Tree{}
	t.build(hashes)
	return t, nil
}

// build derives every layer above 0 from the given leaf digests
func (t *Tree) build(hashes [][]byte) {
	t.layers = [][][]byte{hashes}

	current := hashes
	for len(current) > 1 {
		next := make([][]byte, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				// odd node is promoted as is
				next = append(next, current[i])
				break
			}
			next = append(next, crypto.HashNodes(current[i], current[i+1]))
		}

		t.layers = append(t.layers, next)
		current = next
	}
}

// Root returns the root digest
func (t *Tree) Root() []byte {
	top := t.layers[len(t.layers)-1]
	return clone(top[0])
}

// LeafCount returns the number of leaves
func (t *Tree) LeafCount() uint64 {
	return uint64(len(t.layers[0]))
}

// Depth returns the number of layers including the leaf layer and the root layer
func (t *Tree) Depth() int {
	return len(t.layers)
}

// Leaf returns the digest of the leaf at index
func (t *Tree) Leaf(index uint64) ([]byte, error) {
	if index >= t.LeafCount() {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	return clone(t.layers[0][index]), nil
}

// Layers returns a copy of every layer, leaves first
func (t *Tree) Layers() [][][]byte {
	layers := make([][][]byte, len(t.layers))
	for i, layer := range t.layers {
		layers[i] = make([][]byte, len(layer))
		for j, hash := range layer {
			layers[i][j] = clone(hash)
		}
	}

	return layers
}

// Proof returns the sibling path from the leaf at index up to the root.
// A layer in which the node was promoted without a sibling contributes no
// entry, so proofs of the same tree may differ in length.
func (t *Tree) Proof(index uint64) (Proof, error) {
	if index >= t.LeafCount() {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	proof := make(Proof, 0, len(t.layers)-1)
	idx := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx + 1
		if idx%2 == 1 {
			sibling = idx - 1
		}

		if sibling < uint64(len(layer)) {
			proof = append(proof, ProofNode{Hash: clone(layer[sibling]), IsLeft: idx%2 == 1})
		}

		idx /= 2
	}

	return proof, nil
}

// AddLeaf appends a leaf and rebuilds every layer above the leaves. Proofs
// taken before the call are generally no longer valid for the new root.
func (t *Tree) AddLeaf(leaf []byte) {
	hashes := make([][]byte, len(t.layers[0]), len(t.layers[0])+1)
	copy(hashes, t.layers[0])
	t.build(append(hashes, crypto.HashLeaf(leaf)))
}

// String prints the tree one layer per line, root last
func (t *Tree) String() string {
	var b strings.Builder
	for i, layer := range t.layers {
		fmt.Fprintf(&b, "layer %d:", i)
		for _, hash := range layer {
			b.WriteString(" ")
			b.WriteString(crypto.EncodeDigest(hash))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

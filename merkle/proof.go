package merkle

import (
	"bytes"

	"github.com/frankonly/hashtree/crypto"
)

// ProofNode is one step of a proof: a sibling digest and whether the sibling
// sits to the left of the running node
type ProofNode struct {
	Hash   []byte `cbor:"1,keyasint"`
	IsLeft bool   `cbor:"2,keyasint,omitempty"`
}

// Proof is the ordered sibling path from a leaf towards the root. Its length
// is not fixed by the tree size because promoted nodes have no sibling.
type Proof []ProofNode

// Verify replays proof from leaf and reports whether it reaches root. It never
// fails: malformed or foreign proofs simply return false.
func Verify(root []byte, leaf []byte, proof Proof) bool {
	if len(root) != crypto.DigestSize {
		return false
	}

	current := crypto.HashLeaf(leaf)
	for _, node := range proof {
		if len(node.Hash) != crypto.DigestSize {
			return false
		}

		if node.IsLeft {
			current = crypto.HashNodes(node.Hash, current)
		} else {
			current = crypto.HashNodes(current, node.Hash)
		}
	}

	return bytes.Equal(current, root)
}

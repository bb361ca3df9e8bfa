package merkle

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Bundle carries everything needed to check membership of one leaf offline
type Bundle struct {
	Index uint64 `cbor:"1,keyasint"`
	Leaf  []byte `cbor:"2,keyasint"`
	Root  []byte `cbor:"3,keyasint"`
	Proof Proof  `cbor:"4,keyasint,omitempty"`
}

// bundle has no methods so cbor encodes its fields instead of calling back
// into MarshalBinary
type bundle Bundle

var bundleEncMode cbor.EncMode

func init() {
	var err error
	bundleEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// NewBundle captures the proof of the leaf at index against the current root
func (t *Tree) NewBundle(index uint64, leaf []byte) (*Bundle, error) {
	proof, err := t.Proof(index)
	if err != nil {
		return nil, err
	}

	return &Bundle{Index: index, Leaf: clone(leaf), Root: t.Root(), Proof: proof}, nil
}

// Verify checks the bundled proof
func (b *Bundle) Verify() bool {
	return Verify(b.Root, b.Leaf, b.Proof)
}

// MarshalBinary encodes the bundle as deterministic CBOR
func (b *Bundle) MarshalBinary() ([]byte, error) {
	return bundleEncMode.Marshal((*bundle)(b))
}

// UnmarshalBinary decodes a CBOR bundle
func (b *Bundle) UnmarshalBinary(data []byte) error {
	if err := cbor.Unmarshal(data, (*bundle)(b)); err != nil {
		return fmt.Errorf("invalid bundle: %w", err)
	}

	return nil
}

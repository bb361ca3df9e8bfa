package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DigestSize is the length in bytes of every digest in the tree
const DigestSize = sha256.Size

// prefixes keep leaf digests and interior digests in separate domains (RFC 6962)
const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// Hash hashes bytes by SHA256
func Hash(value []byte) []byte {
	hash := sha256.Sum256(value)
	return hash[:]
}

// HashLeaf hashes a raw leaf value into its layer-0 digest
func HashLeaf(value []byte) []byte {
	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(value)
	return h.Sum(nil)
}

// HashNodes hashes two nodes into one, left operand first
func HashNodes(left []byte, right []byte) []byte {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// EncodeDigest returns the hex form of a digest
func EncodeDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}

// DecodeDigest parses a hex digest and checks its length
func DecodeDigest(s string) ([]byte, error) {
	digest, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid digest %q: %w", s, err)
	}

	if len(digest) != DigestSize {
		return nil, fmt.Errorf("invalid digest length %d, want %d", len(digest), DigestSize)
	}

	return digest, nil
}

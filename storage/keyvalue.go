package storage

import (
	"encoding/binary"
	"fmt"
)

const (
	sizeConstantKey     = "s"
	leafPrefix          = "l"
	leafHashIndexPrefix = "h"
)

func sizeKey() []byte {
	return []byte(sizeConstantKey)
}

func sizeKeyValue(size uint64) ([]byte, []byte) {
	return sizeKey(), encodeUint64(size)
}

func leafKey(id uint64) []byte {
	return append([]byte(leafPrefix), encodeUint64(id)...)
}

func hashIndexKey(hash []byte) []byte {
	return append([]byte(leafHashIndexPrefix), hash...)
}

func hashIndexKeyValue(hash []byte, id uint64) ([]byte, []byte) {
	return hashIndexKey(hash), encodeUint64(id)
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func decodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: value length %d", ErrCorrupted, len(b))
	}

	return binary.BigEndian.Uint64(b), nil
}

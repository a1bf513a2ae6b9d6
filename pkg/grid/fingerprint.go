package grid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Encoder appends the byte form of v to dst.
type Encoder[T any] func(dst []byte, v T) []byte

// Fingerprint hashes the dimensions and row-major contents of s with xxhash.
// Equal grids hash equally; use it to spot repeated states cheaply.
func Fingerprint[T any](s Store[T], encode Encoder[T]) uint64 {
	d := xxhash.New()

	var buf []byte
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Width()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Height()))
	_, _ = d.Write(buf)

	for v := range s.Iter() {
		buf = encode(buf[:0], v)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// EncodeBool is an Encoder for bool cells.
func EncodeBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

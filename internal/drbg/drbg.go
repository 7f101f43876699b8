// Package drbg provides a deterministic random bit generator for building
// reproducible test fixtures: large patterns, filter blocks, and forbidden
// masks that would be tedious to hand-author but must stay byte-identical
// across test runs.
package drbg

import "crypto/sha3"

// DRBG is a deterministic random bit generator based on SHAKE128, seeded by
// a customization string so related tests can derive independent streams
// from a shared label without coordinating byte offsets.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG seeded with customization. The same customization
// always produces the same stream.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Uint64 returns the next 8 bytes of output as a little-endian uint64 — a
// convenient unit for seeding a tile row (one bit-plane word per row).
func (d *DRBG) Uint64() uint64 {
	b := d.Data(8)
	var v uint64
	for i, x := range b {
		v |= uint64(x) << (8 * i)
	}
	return v
}

// Intn returns a deterministic value in [0, n). n must be positive.
func (d *DRBG) Intn(n int) int {
	return int(d.Uint64() % uint64(n))
}

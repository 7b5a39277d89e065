package hash

import (
	"github.com/luxfi/cryptosuite/registry"
	"github.com/zeebo/blake3"
)

// zeebo/blake3 is an external collaborator per spec §1, carried over from
// the teacher's own blake3 precompile module (which wraps the same library
// behind a fixed-output digest). Its New() already returns a hash.Hash
// shape, so BLAKE3 slots into this family's Engine/State seam exactly like
// the stdlib SHA-2 engines in sha2.go. BLAKE3 has no counterpart in
// original_source (Velo's algorithm set predates it); it is a supplemental
// hash algorithm this module adds beyond the ported C library.
type blake3Engine struct{}

func (blake3Engine) New() State { return blake3.New() }

var registerBLAKE3 registry.Once

// RegisterBLAKE3 registers the BLAKE3 hash algorithm at its default 32-byte
// output length.
func RegisterBLAKE3() {
	registerBLAKE3.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: BLAKE3,
			Descriptor: Descriptor{
				Algorithm:  BLAKE3,
				DigestSize: 32,
				BlockSize:  64,
				Engine:     blake3Engine{},
			},
		})
	})
}

func init() {
	RegisterBLAKE3()
}

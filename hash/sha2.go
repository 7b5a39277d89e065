package hash

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/luxfi/cryptosuite/registry"
)

// The SHA-2 compression functions are an external collaborator per spec §1;
// crypto/sha256 and crypto/sha512 already implement the hash.Hash shape this
// package's State interface needs, so the engines below are thin adapters,
// not reimplementations.

type stdEngine struct {
	new func() State
}

func (e stdEngine) New() State { return e.new() }

var registerSHA2 registry.Once

// RegisterSHA2 registers the SHA-256, SHA-384, SHA-512, SHA-512/224 and
// SHA-512/256 algorithms. It is safe to call from multiple init paths; the
// body runs exactly once, matching spec §4.3's registration-guard rule.
func RegisterSHA2() {
	registerSHA2.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SHA256,
			Descriptor: Descriptor{
				Algorithm:  SHA256,
				DigestSize: 32,
				BlockSize:  64,
				Engine:     stdEngine{new: func() State { return sha256.New() }},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SHA384,
			Descriptor: Descriptor{
				Algorithm:  SHA384,
				DigestSize: 48,
				BlockSize:  128,
				Engine:     stdEngine{new: func() State { return sha512.New384() }},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SHA512,
			Descriptor: Descriptor{
				Algorithm:  SHA512,
				DigestSize: 64,
				BlockSize:  128,
				Engine:     stdEngine{new: func() State { return sha512.New() }},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SHA512_224,
			Descriptor: Descriptor{
				Algorithm:  SHA512_224,
				DigestSize: 28,
				BlockSize:  128,
				Engine:     stdEngine{new: func() State { return sha512.New512_224() }},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SHA512_256,
			Descriptor: Descriptor{
				Algorithm:  SHA512_256,
				DigestSize: 32,
				BlockSize:  128,
				Engine:     stdEngine{new: func() State { return sha512.New512_256() }},
			},
		})
	})
}

func init() {
	RegisterSHA2()
}

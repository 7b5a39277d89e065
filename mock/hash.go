// Package mock implements the mock layer from spec §9 Design Notes: one
// installable-callback test double per family, each registered under that
// family's MockAlgorithm/MockSource selector so application code under test
// can select a mock exactly the way it selects a real algorithm. Grounded on
// original_source/src/mock/*/vccrypt_*_register_mock*.cpp, which install a
// context struct of function pointers defaulting to
// VCCRYPT_ERROR_MOCK_NOT_ADDED; Hooks structs below are that struct's Go
// shape, installed by tests by assigning the package-level hook variables
// (Hash, PRNG, Signature, ...) instead of an options_context void pointer.
package mock

import (
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "mock"

// HashHooks holds the installable callbacks backing hash.MockAlgorithm.
// A nil Digest appends the data to the accumulator; a nil Finalize yields an
// all-zero digest.
type HashHooks struct {
	Digest   func(acc []byte, data []byte) []byte
	Finalize func(acc []byte, digestSize int) []byte
}

// Hash is installed by tests before exercising code that selects
// hash.MockAlgorithm. Replace it wholesale (mock.Hash = mock.HashHooks{...})
// rather than mutating fields concurrently with use.
var Hash = HashHooks{}

type mockHashState struct {
	digestSize int
	acc        []byte
}

func (s *mockHashState) Write(p []byte) (int, error) {
	if Hash.Digest != nil {
		s.acc = Hash.Digest(s.acc, p)
	} else {
		s.acc = append(s.acc, p...)
	}
	return len(p), nil
}

func (s *mockHashState) Sum(b []byte) []byte {
	var out []byte
	if Hash.Finalize != nil {
		out = Hash.Finalize(s.acc, s.digestSize)
	} else {
		out = make([]byte, s.digestSize)
	}
	return append(b, out...)
}

func (s *mockHashState) Reset() { s.acc = nil }

type mockHashEngine struct{ digestSize int }

func (e mockHashEngine) New() hash.State {
	return &mockHashState{digestSize: e.digestSize}
}

var registerHash registry.Once

// RegisterHash registers hash.MockAlgorithm with a 64-byte digest / 128-byte
// block size, matching SHA-512's sizing so a mock hash can drop into any
// context sized for the suite's default hash family.
func RegisterHash() {
	registerHash.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: hash.InterfaceTag,
			Algorithm: hash.MockAlgorithm,
			Descriptor: hash.Descriptor{
				Algorithm:  hash.MockAlgorithm,
				DigestSize: 64,
				BlockSize:  128,
				Engine:     mockHashEngine{digestSize: 64},
			},
		})
	})
}

func init() { RegisterHash() }

// notAdded builds the StatusMockNotAdded error a hook-less call returns,
// mirroring every original_source mock's fallback.
func notAdded(operation string) error {
	return cryptoerr.New(family, operation, cryptoerr.StatusMockNotAdded)
}

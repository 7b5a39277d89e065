package mock

import (
	"github.com/luxfi/cryptosuite/blockcipher"
	"github.com/luxfi/cryptosuite/registry"
)

// BlockCipherHooks holds the installable callbacks backing
// blockcipher.MockAlgorithm. EncryptBlock/DecryptBlock have no error return
// in blockcipher.CipherState (matching the real Cipher contract, which
// cannot fail per-block), so an unset hook there copies input to output
// untouched rather than reporting mock-not-added; Expand is where a test
// opts into (or withholds) the mock entirely.
type BlockCipherHooks struct {
	Expand       func(key []byte, encrypt bool) error
	EncryptBlock func(iv, input, output []byte)
	DecryptBlock func(iv, input, output []byte)
}

// BlockCipher is installed by tests before exercising code that selects
// blockcipher.MockAlgorithm.
var BlockCipher = BlockCipherHooks{}

type mockBlockCipher struct{}

func (mockBlockCipher) Expand(key []byte, encrypt bool) (blockcipher.CipherState, error) {
	if BlockCipher.Expand == nil {
		return nil, notAdded("expand")
	}
	if err := BlockCipher.Expand(key, encrypt); err != nil {
		return nil, err
	}
	return mockBlockCipherState{}, nil
}

type mockBlockCipherState struct{}

func (mockBlockCipherState) EncryptBlock(iv, input, output []byte) {
	if BlockCipher.EncryptBlock != nil {
		BlockCipher.EncryptBlock(iv, input, output)
		return
	}
	copy(output, input)
}

func (mockBlockCipherState) DecryptBlock(iv, input, output []byte) {
	if BlockCipher.DecryptBlock != nil {
		BlockCipher.DecryptBlock(iv, input, output)
		return
	}
	copy(output, input)
}

var registerBlockCipher registry.Once

// RegisterBlockCipher registers blockcipher.MockAlgorithm, sized like
// AES-256-CBC-FIPS.
func RegisterBlockCipher() {
	registerBlockCipher.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: blockcipher.InterfaceTag,
			Algorithm: blockcipher.MockAlgorithm,
			Descriptor: blockcipher.Descriptor{
				Algorithm:          blockcipher.MockAlgorithm,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Cipher:             mockBlockCipher{},
			},
		})
	})
}

func init() { RegisterBlockCipher() }

package mock

import (
	"github.com/luxfi/cryptosuite/registry"
	"github.com/luxfi/cryptosuite/streamcipher"
)

// StreamCipherHooks holds the installable callbacks backing
// streamcipher.MockAlgorithm. XORAt has no error return in
// streamcipher.KeyStreamState, so an unset hook copies src to dst untouched;
// Expand and Seed are where a test opts into (or withholds) the mock.
type StreamCipherHooks struct {
	Expand func(key []byte) error
	Seed   func(iv []byte) error
	XORAt  func(offset uint64, dst, src []byte)
}

// StreamCipher is installed by tests before exercising code that selects
// streamcipher.MockAlgorithm.
var StreamCipher = StreamCipherHooks{}

type mockKeyStream struct{}

func (mockKeyStream) Expand(key []byte) (streamcipher.KeyStreamState, error) {
	if StreamCipher.Expand == nil {
		return nil, notAdded("expand")
	}
	if err := StreamCipher.Expand(key); err != nil {
		return nil, err
	}
	return mockKeyStreamState{}, nil
}

type mockKeyStreamState struct{}

func (mockKeyStreamState) Seed(iv []byte) error {
	if StreamCipher.Seed == nil {
		return notAdded("seed")
	}
	return StreamCipher.Seed(iv)
}

func (mockKeyStreamState) XORAt(offset uint64, dst, src []byte) {
	if StreamCipher.XORAt != nil {
		StreamCipher.XORAt(offset, dst, src)
		return
	}
	copy(dst, src)
}

var registerStreamCipher registry.Once

// RegisterStreamCipher registers streamcipher.MockAlgorithm, sized like
// AES-256-CTR-FIPS.
func RegisterStreamCipher() {
	registerStreamCipher.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: streamcipher.InterfaceTag,
			Algorithm: streamcipher.MockAlgorithm,
			Descriptor: streamcipher.Descriptor{
				Algorithm:          streamcipher.MockAlgorithm,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Stream:             mockKeyStream{},
			},
		})
	})
}

func init() { RegisterStreamCipher() }

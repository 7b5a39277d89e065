package mock

import (
	"github.com/luxfi/cryptosuite/kdf"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

// KDFHooks holds the installable callback backing kdf.MockAlgorithm.
type KDFHooks struct {
	DeriveKey func(derivedKey []byte, pass, salt []byte, rounds uint32) error
}

// KDF is installed by tests before exercising code that selects
// kdf.MockAlgorithm.
var KDF = KDFHooks{}

type mockKDFEngine struct{}

func (mockKDFEngine) DeriveKey(derivedKey []byte, prf func(key []byte) (*mac.Context, error), hLen int, pass, salt []byte, rounds uint32) error {
	if KDF.DeriveKey == nil {
		return notAdded("derive_key")
	}
	return KDF.DeriveKey(derivedKey, pass, salt, rounds)
}

var registerKDF registry.Once

// RegisterKDF registers kdf.MockAlgorithm. The descriptor carries no HMAC
// binding and the mock Engine never calls prf(); kdf.NewOptions resolves
// whichever HMAC algorithm the caller names (the tests use mac.MockAlgorithm)
// to report a digest length.
func RegisterKDF() {
	registerKDF.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: kdf.InterfaceTag,
			Algorithm: kdf.MockAlgorithm,
			Descriptor: kdf.Descriptor{
				Algorithm: kdf.MockAlgorithm,
				Engine:    mockKDFEngine{},
			},
		})
	})
}

func init() { RegisterKDF() }

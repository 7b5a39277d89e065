package mock

import (
	"github.com/luxfi/cryptosuite/registry"
	"github.com/luxfi/cryptosuite/signature"
)

// SignatureHooks holds the installable callbacks backing
// signature.MockAlgorithm.
type SignatureHooks struct {
	Keypair func(priv, pub []byte) error
	Sign    func(sig, priv, message []byte) error
	Verify  func(sig, pub, message []byte) error
}

// Signature is installed by tests before exercising code that selects
// signature.MockAlgorithm.
var Signature = SignatureHooks{}

type mockSignatureEngine struct{}

func (mockSignatureEngine) Keypair(priv, pub []byte) error {
	if Signature.Keypair == nil {
		return notAdded("keypair")
	}
	return Signature.Keypair(priv, pub)
}

func (mockSignatureEngine) Sign(sig, priv, message []byte) error {
	if Signature.Sign == nil {
		return notAdded("sign")
	}
	return Signature.Sign(sig, priv, message)
}

func (mockSignatureEngine) Verify(sig, pub, message []byte) error {
	if Signature.Verify == nil {
		return notAdded("verify")
	}
	return Signature.Verify(sig, pub, message)
}

var registerSignature registry.Once

// RegisterSignature registers signature.MockAlgorithm, sized like Ed25519.
func RegisterSignature() {
	registerSignature.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: signature.InterfaceTag,
			Algorithm: signature.MockAlgorithm,
			Descriptor: signature.Descriptor{
				Algorithm:      signature.MockAlgorithm,
				SignatureSize:  signature.Ed25519SignatureSize,
				PrivateKeySize: signature.Ed25519PrivateKeySize,
				PublicKeySize:  signature.Ed25519PublicKeySize,
				Engine:         mockSignatureEngine{},
			},
		})
	})
}

func init() { RegisterSignature() }

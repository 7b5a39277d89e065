package mock

import (
	"github.com/luxfi/cryptosuite/keyagreement"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

// KeyAgreementHooks holds the installable callbacks backing
// keyagreement.MockAlgorithm.
type KeyAgreementHooks struct {
	Keypair        func(priv, pub []byte) error
	LongTermSecret func(priv, pub, shared []byte) error
}

// KeyAgreement is installed by tests before exercising code that selects
// keyagreement.MockAlgorithm.
var KeyAgreement = KeyAgreementHooks{}

type mockKeyAgreementEngine struct{}

func (mockKeyAgreementEngine) Keypair(priv, pub []byte) error {
	if KeyAgreement.Keypair == nil {
		return notAdded("keypair")
	}
	return KeyAgreement.Keypair(priv, pub)
}

func (mockKeyAgreementEngine) LongTermSecret(priv, pub, shared []byte) error {
	if KeyAgreement.LongTermSecret == nil {
		return notAdded("long_term_secret_create")
	}
	return KeyAgreement.LongTermSecret(priv, pub, shared)
}

var registerKeyAgreement registry.Once

// RegisterKeyAgreement registers keyagreement.MockAlgorithm, sized like
// curve25519-sha512, with short-term secret support wired through
// mac.MockAlgorithm.
func RegisterKeyAgreement() {
	registerKeyAgreement.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: keyagreement.InterfaceTag,
			Algorithm: keyagreement.MockAlgorithm,
			Descriptor: keyagreement.Descriptor{
				Algorithm:        keyagreement.MockAlgorithm,
				SharedSecretSize: 64,
				PrivateKeySize:   32,
				PublicKeySize:    32,
				MinimumNonceSize: 64,
				HMACAlgorithm:    mac.MockAlgorithm,
				Engine:           mockKeyAgreementEngine{},
			},
		})
	})
}

func init() { RegisterKeyAgreement() }

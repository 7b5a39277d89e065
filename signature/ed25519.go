package signature

import (
	"crypto/rand"
	"errors"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/luxfi/cryptosuite/registry"
)

// circl's ed25519 package is an external collaborator per spec §1; it
// exposes the same seed-expansion and sign/verify shape as stdlib
// crypto/ed25519, so the engine below is a thin adapter.

type ed25519Engine struct{}

func (ed25519Engine) Keypair(priv, pub []byte) error {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}
	copy(priv, privateKey)
	copy(pub, publicKey)
	return nil
}

func (ed25519Engine) Sign(sig, priv, message []byte) error {
	signature := ed25519.Sign(ed25519.PrivateKey(priv), message)
	copy(sig, signature)
	return nil
}

func (ed25519Engine) Verify(sig, pub, message []byte) error {
	if !ed25519.Verify(ed25519.PublicKey(pub), message, sig) {
		return errors.New("ed25519: signature verification failed")
	}
	return nil
}

var registerEd25519 registry.Once

// RegisterEd25519 registers the Ed25519 digital signature algorithm.
func RegisterEd25519() {
	registerEd25519.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: Ed25519,
			Descriptor: Descriptor{
				Algorithm:      Ed25519,
				SignatureSize:  Ed25519SignatureSize,
				PrivateKeySize: Ed25519PrivateKeySize,
				PublicKeySize:  Ed25519PublicKeySize,
				Engine:         ed25519Engine{},
			},
		})
	})
}

func init() {
	RegisterEd25519()
}

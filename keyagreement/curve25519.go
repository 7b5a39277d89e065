package keyagreement

import (
	"crypto/rand"
	"crypto/sha512"

	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
	"golang.org/x/crypto/curve25519"
)

// golang.org/x/crypto/curve25519 is an external collaborator per spec §1,
// grounded the same way original_source's ref/curve25519.h wraps X25519:
// keypair generation plus the raw scalar multiplication that produces the
// long-term secret.

type curve25519Engine struct {
	// hashLongTerm, when non-nil, hashes the raw X25519 output before it
	// becomes the long-term secret (sha512 and sha512_256 variants); nil
	// for the plain variant, which uses the raw output directly.
	hashLongTerm func(raw []byte) []byte
}

func (e curve25519Engine) Keypair(priv, pub []byte) error {
	if _, err := rand.Read(priv); err != nil {
		return err
	}
	clamp(priv)
	out, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return err
	}
	copy(pub, out)
	return nil
}

// clamp applies the standard X25519 private-scalar clamping bits.
func clamp(priv []byte) {
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
}

func (e curve25519Engine) LongTermSecret(priv, pub, shared []byte) error {
	raw, err := curve25519.X25519(priv, pub)
	if err != nil {
		return err
	}
	if e.hashLongTerm == nil {
		copy(shared, raw)
		return nil
	}
	copy(shared, e.hashLongTerm(raw))
	return nil
}

func sha512LongTerm(raw []byte) []byte {
	sum := sha512.Sum512(raw)
	return sum[:]
}

func sha512_256LongTerm(raw []byte) []byte {
	sum := sha512.Sum512_256(raw)
	return sum[:]
}

var registerCurve25519 registry.Once

// RegisterCurve25519 registers the plain, SHA-512, and SHA-512/256
// curve25519 key agreement variants. Plain has no short-term secret support
// (HMACAlgorithm left at the zero value), matching
// original_source/src/key_agreement/vccrypt_key_agreement_register_curve25519_plain.c,
// which never wires a short_term_secret_create function pointer.
func RegisterCurve25519() {
	registerCurve25519.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: Curve25519Plain,
			Descriptor: Descriptor{
				Algorithm:        Curve25519Plain,
				SharedSecretSize: 32,
				PrivateKeySize:   32,
				PublicKeySize:    32,
				MinimumNonceSize: 32,
				Engine:           curve25519Engine{},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: Curve25519SHA512,
			Descriptor: Descriptor{
				Algorithm:        Curve25519SHA512,
				SharedSecretSize: 64,
				PrivateKeySize:   32,
				PublicKeySize:    32,
				MinimumNonceSize: 64,
				HMACAlgorithm:    mac.HMACSHA512,
				Engine:           curve25519Engine{hashLongTerm: sha512LongTerm},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: Curve25519SHA512256,
			Descriptor: Descriptor{
				Algorithm:        Curve25519SHA512256,
				SharedSecretSize: 32,
				PrivateKeySize:   32,
				PublicKeySize:    32,
				MinimumNonceSize: 32,
				HMACAlgorithm:    mac.HMACSHA512_256,
				Engine:           curve25519Engine{hashLongTerm: sha512_256LongTerm},
			},
		})
	})
}

func init() {
	RegisterCurve25519()
}

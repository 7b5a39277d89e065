// Package keyagreement implements the key agreement family from spec
// §4.10: Diffie-Hellman-style keypairs that derive a long-term shared
// secret from a private and a peer's public key, plus a short-term secret
// derivation pipeline that folds in per-session server/client nonces so the
// same long-term secret never directly encrypts traffic.
package keyagreement

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "key_agreement"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x000A

// Algorithm selectors, wire-stable per spec §6.
const (
	Curve25519Plain     registry.AlgorithmID = 0x0001_0000
	Curve25519SHA512    registry.AlgorithmID = 0x0002_0000
	Curve25519SHA512256 registry.AlgorithmID = 0x0004_0000

	// MockAlgorithm is installed by the mock package for test doubles.
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// Engine is the per-algorithm vtable a concrete implementation provides.
type Engine interface {
	Keypair(priv, pub []byte) error
	LongTermSecret(priv, pub, shared []byte) error
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm         registry.AlgorithmID
	SharedSecretSize  int
	PrivateKeySize    int
	PublicKeySize     int
	MinimumNonceSize  int
	HMACAlgorithm     registry.AlgorithmID // 0 if short-term secrets are unsupported
	Engine            Engine
}

// Options is a live per-family object, spec §4.10.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions looks up algorithm in the registry and binds alloc to it.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusKeyAgreementOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusKeyAgreementOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

func (o *Options) SharedSecretSize() int { return o.descriptor.SharedSecretSize }
func (o *Options) PrivateKeySize() int   { return o.descriptor.PrivateKeySize }
func (o *Options) PublicKeySize() int    { return o.descriptor.PublicKeySize }
func (o *Options) MinimumNonceSize() int { return o.descriptor.MinimumNonceSize }

// SupportsShortTermSecret reports whether this algorithm can derive
// short-term secrets. The plain variant cannot: it has no HMAC bound to it
// (original_source never wires a short-term-secret function pointer for
// curve25519_plain), so short-term derivation is undefined for it.
func (o *Options) SupportsShortTermSecret() bool { return o.descriptor.HMACAlgorithm != 0 }

// Dispose releases the Options. Key agreement options own no secret material.
func (o *Options) Dispose() {}

// Context is a live key agreement instance bound to opts.
type Context struct {
	options *Options
}

// Init begins a new key agreement context.
func Init(opts *Options) (*Context, error) {
	return &Context{options: opts}, nil
}

// Keypair generates a fresh private/public keypair into priv and pub.
func (c *Context) Keypair(priv, pub *buffer.Buffer) error {
	if priv.Size() != c.options.descriptor.PrivateKeySize || pub.Size() != c.options.descriptor.PublicKeySize {
		return cryptoerr.New(family, "keypair", cryptoerr.StatusKeyAgreementInitInvalidArg)
	}
	if err := c.options.descriptor.Engine.Keypair(priv.Data(), pub.Data()); err != nil {
		return cryptoerr.Wrap(family, "keypair", cryptoerr.StatusKeyAgreementInitInvalidArg, err)
	}
	return nil
}

// LongTermSecret derives the long-term shared secret between priv and pub
// into shared (which must be SharedSecretSize() bytes).
func (c *Context) LongTermSecret(priv, pub, shared *buffer.Buffer) error {
	if priv.Size() != c.options.descriptor.PrivateKeySize || pub.Size() != c.options.descriptor.PublicKeySize || shared.Size() != c.options.descriptor.SharedSecretSize {
		return cryptoerr.New(family, "long_term_secret_create", cryptoerr.StatusKeyAgreementInitInvalidArg)
	}
	if err := c.options.descriptor.Engine.LongTermSecret(priv.Data(), pub.Data(), shared.Data()); err != nil {
		return cryptoerr.Wrap(family, "long_term_secret_create", cryptoerr.StatusKeyAgreementInitInvalidArg, err)
	}
	return nil
}

// ShortTermSecret derives a short-term secret from the long-term secret
// between priv and pub, folded through HMAC keyed by the long-term secret
// and fed server_nonce||client_nonce, spec §4.10. Both peers MUST agree in
// advance on which side is "server" so the nonce ordering matches;
// swapping the order on one side silently produces a different secret.
func (c *Context) ShortTermSecret(priv, pub, serverNonce, clientNonce, shared *buffer.Buffer) error {
	if !c.options.SupportsShortTermSecret() {
		return cryptoerr.New(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg)
	}
	if serverNonce.Size() < c.options.descriptor.MinimumNonceSize || clientNonce.Size() < c.options.descriptor.MinimumNonceSize {
		return cryptoerr.New(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg)
	}
	if shared.Size() != c.options.descriptor.SharedSecretSize {
		return cryptoerr.New(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg)
	}

	longTerm, err := buffer.New(allocator.System, c.options.descriptor.SharedSecretSize)
	if err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	defer longTerm.Dispose()
	if err := c.LongTermSecret(priv, pub, longTerm); err != nil {
		return err
	}

	macOpts, err := mac.NewOptions(allocator.System, c.options.descriptor.HMACAlgorithm)
	if err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	defer macOpts.Dispose()

	hmacCtx, err := mac.Init(macOpts, longTerm.Data())
	if err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	if err := hmacCtx.Digest(serverNonce.Data()); err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	if err := hmacCtx.Digest(clientNonce.Data()); err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	if err := hmacCtx.Finalize(shared); err != nil {
		return cryptoerr.Wrap(family, "short_term_secret_create", cryptoerr.StatusKeyAgreementShortTermCreateInvalidArg, err)
	}
	hmacCtx.Dispose()
	return nil
}

// Dispose releases the Context. Idempotent; no-op, the Context owns no
// secret material of its own.
func (c *Context) Dispose() {}

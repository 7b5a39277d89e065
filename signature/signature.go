// Package signature implements the digital signature family from spec
// §4.9: a caller generates (or derives) a keypair, signs an artifact with
// the private key, and any holder of the public key can verify it. The
// private key can never be recovered from a signature or the public key.
package signature

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "signature"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0008

// Algorithm selectors, wire-stable per spec §6.
const Ed25519 registry.AlgorithmID = 0x0000_1000

// MockAlgorithm is installed by the mock package for test doubles.
const MockAlgorithm registry.AlgorithmID = 0x8000_0000

// Ed25519 size constants, per spec §6 / original_source's digital_signature.h.
const (
	Ed25519SignatureSize = 64
	Ed25519PrivateKeySize = 64
	Ed25519PublicKeySize  = 32
)

// Engine is the per-algorithm vtable a concrete implementation provides.
type Engine interface {
	Keypair(priv, pub []byte) error
	Sign(sig, priv, message []byte) error
	Verify(sig, pub, message []byte) error
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm      registry.AlgorithmID
	SignatureSize  int
	PrivateKeySize int
	PublicKeySize  int
	Engine         Engine
}

// Options is a live per-family object, spec §4.9.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions looks up algorithm in the registry and binds alloc to it.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusSignatureOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusSignatureOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

func (o *Options) SignatureSize() int  { return o.descriptor.SignatureSize }
func (o *Options) PrivateKeySize() int { return o.descriptor.PrivateKeySize }
func (o *Options) PublicKeySize() int  { return o.descriptor.PublicKeySize }

// Dispose releases the Options. Signature options own no secret material.
func (o *Options) Dispose() {}

// Context is a live signature instance bound to opts.
type Context struct {
	options *Options
}

// Init begins a new signature context.
func Init(opts *Options) (*Context, error) {
	return &Context{options: opts}, nil
}

// Keypair generates a fresh private/public keypair into priv and pub, which
// must be exactly PrivateKeySize/PublicKeySize bytes.
func (c *Context) Keypair(priv, pub *buffer.Buffer) error {
	if priv.Size() != c.options.descriptor.PrivateKeySize || pub.Size() != c.options.descriptor.PublicKeySize {
		return cryptoerr.New(family, "keypair", cryptoerr.StatusSignatureInitInvalidArg)
	}
	if err := c.options.descriptor.Engine.Keypair(priv.Data(), pub.Data()); err != nil {
		return cryptoerr.Wrap(family, "keypair", cryptoerr.StatusSignatureInitInvalidArg, err)
	}
	return nil
}

// Sign produces a signature over message using priv, writing it to sig
// (which must be exactly SignatureSize() bytes).
func (c *Context) Sign(sig *buffer.Buffer, priv *buffer.Buffer, message []byte) error {
	if sig.Size() != c.options.descriptor.SignatureSize || priv.Size() != c.options.descriptor.PrivateKeySize {
		return cryptoerr.New(family, "sign", cryptoerr.StatusSignatureInitInvalidArg)
	}
	if err := c.options.descriptor.Engine.Sign(sig.Data(), priv.Data(), message); err != nil {
		return cryptoerr.Wrap(family, "sign", cryptoerr.StatusSignatureInitInvalidArg, err)
	}
	return nil
}

// Verify checks sig against message under pub, returning
// StatusSignatureVerifyFailure on a bad signature rather than a generic
// error, since callers branch on this specific outcome.
func (c *Context) Verify(sig *buffer.Buffer, pub *buffer.Buffer, message []byte) error {
	if sig.Size() != c.options.descriptor.SignatureSize || pub.Size() != c.options.descriptor.PublicKeySize {
		return cryptoerr.New(family, "verify", cryptoerr.StatusSignatureInitInvalidArg)
	}
	if err := c.options.descriptor.Engine.Verify(sig.Data(), pub.Data(), message); err != nil {
		return cryptoerr.New(family, "verify", cryptoerr.StatusSignatureVerifyFailure)
	}
	return nil
}

// Dispose releases the Context. Idempotent; no-op, the Context owns no
// secret material of its own (callers own the key buffers).
func (c *Context) Dispose() {}

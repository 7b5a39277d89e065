// Package kdf implements the key derivation family from spec §4.11: derive
// a cryptographic key of caller-chosen length from a password/passphrase and
// a salt, iterated for a caller-chosen round count, using an HMAC algorithm
// as the underlying pseudorandom function.
package kdf

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "key_derivation"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x000B

// Algorithm selectors, wire-stable per spec §6.
const (
	PBKDF2 registry.AlgorithmID = 0x0001_0000

	// MockAlgorithm is installed by the mock package for test doubles.
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// Engine derives a key of len(derivedKey) bytes from pass and salt, using
// the named prf (an mac.Descriptor lookup performed by the caller) for
// rounds iterations.
type Engine interface {
	DeriveKey(derivedKey []byte, prf func(key []byte) (*mac.Context, error), hLen int, pass, salt []byte, rounds uint32) error
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm registry.AlgorithmID
	Engine    Engine
}

// Options is a live per-family object, spec §4.11. It binds a key
// derivation algorithm to an HMAC algorithm used as its PRF.
type Options struct {
	alloc         allocator.Allocator
	descriptor    Descriptor
	hmacAlgorithm registry.AlgorithmID
	digestLength  int
}

// NewOptions looks up kdAlgorithm and hmacAlgorithm in their respective
// registries and binds them together.
func NewOptions(alloc allocator.Allocator, kdAlgorithm, hmacAlgorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, kdAlgorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusKDFOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusKDFOptionsInitMissingImpl)
	}

	macOpts, err := mac.NewOptions(alloc, hmacAlgorithm)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "options_init", cryptoerr.StatusKDFOptionsInitMissingHMACImpl, err)
	}
	digestLength := macOpts.MACSize()
	macOpts.Dispose()

	return &Options{
		alloc:         alloc,
		descriptor:    desc,
		hmacAlgorithm: hmacAlgorithm,
		digestLength:  digestLength,
	}, nil
}

// HMACDigestLength is the output size of the bound HMAC PRF.
func (o *Options) HMACDigestLength() int { return o.digestLength }

// Dispose releases the Options. Key derivation options own no secret
// material.
func (o *Options) Dispose() {}

// Context is a live key derivation instance bound to opts.
type Context struct {
	options *Options
}

// Init begins a new key derivation context.
func Init(opts *Options) (*Context, error) {
	if opts == nil {
		return nil, cryptoerr.New(family, "init", cryptoerr.StatusKDFInitInvalidArg)
	}
	return &Context{options: opts}, nil
}

// DeriveKey fills derivedKey with key material derived from pass and salt,
// iterated for rounds rounds of the bound algorithm. derivedKey may be any
// length; the underlying algorithm block-fills and truncates as needed.
func (c *Context) DeriveKey(derivedKey *buffer.Buffer, pass, salt *buffer.Buffer, rounds uint32) error {
	if derivedKey.Size() == 0 || rounds == 0 {
		return cryptoerr.New(family, "derive_key", cryptoerr.StatusKDFDeriveKeyInvalidArg)
	}

	prf := func(key []byte) (*mac.Context, error) {
		macOpts, err := mac.NewOptions(c.options.alloc, c.options.hmacAlgorithm)
		if err != nil {
			return nil, err
		}
		defer macOpts.Dispose()
		return mac.Init(macOpts, key)
	}

	if err := c.options.descriptor.Engine.DeriveKey(derivedKey.Data(), prf, c.options.digestLength, pass.Data(), salt.Data(), rounds); err != nil {
		return cryptoerr.Wrap(family, "derive_key", cryptoerr.StatusKDFDeriveKeyInvalidArg, err)
	}
	return nil
}

// Dispose releases the Context.
func (c *Context) Dispose() {}

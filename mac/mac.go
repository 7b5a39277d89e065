// Package mac implements the MAC family contract from spec §4.5 and the
// generic HMAC construction that is the core algorithm of this component:
// HMAC is built once, over any registered hash family, rather than per
// concrete hash algorithm.
package mac

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "mac"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0009

// Algorithm selectors. HMAC-SHA-512/256 is the concrete MAC this spec names
// for short-term-secret extraction (spec §4.5); HMAC-SHA-512 backs
// Ed25519-style signing hashes and PBKDF2's PRF.
const (
	HMACSHA512     registry.AlgorithmID = 0x0000_0400
	HMACSHA512_256 registry.AlgorithmID = 0x0000_1000

	// MockAlgorithm is installed by the mock package for test doubles. It
	// runs the real HMAC construction over hash.MockAlgorithm, so installing
	// mock.Hash hooks controls the MAC's behavior.
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// Descriptor binds a MAC algorithm to the hash algorithm HMAC runs over.
type Descriptor struct {
	Algorithm    registry.AlgorithmID
	HashAlgorithm registry.AlgorithmID
	KeySize      int
	MACSize      int
}

// Options is a live per-family MAC options object, spec §4.5.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
	hashOpts   *hash.Options
}

// NewOptions looks up the MAC descriptor for algorithm, then initializes the
// underlying hash options it needs.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusMACOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusMACOptionsInitMissingImpl)
	}
	hashOpts, err := hash.NewOptions(alloc, desc.HashAlgorithm)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "options_init", cryptoerr.StatusMACOptionsInitMissingImpl, err)
	}
	return &Options{alloc: alloc, descriptor: desc, hashOpts: hashOpts}, nil
}

// MACSize is the fixed output size in bytes.
func (o *Options) MACSize() int { return o.descriptor.MACSize }

// Dispose releases the underlying hash options.
func (o *Options) Dispose() { o.hashOpts.Dispose() }

// Context is HMAC's per-instance state (spec §4.5 steps 1-5). It holds the
// seeded inner hash plus the derived key, mirroring
// original_source/src/mac/hmac.h's vccrypt_hmac_state_t.
type Context struct {
	options   *Options
	innerHash *hash.Context
	key       []byte // derived key (hashed if too long, zero-extended), exactly hashOpts.BlockSize() bytes; the 0x36/0x5c pads are applied to copies in Init and Finalize
	finalized bool
}

// Init seeds a new HMAC context with key, following spec §4.5 steps 1-3.
func Init(opts *Options, key []byte) (*Context, error) {
	if len(key) == 0 {
		return nil, cryptoerr.New(family, "init", cryptoerr.StatusMACInitInvalidArg)
	}

	blockSize := opts.hashOpts.BlockSize()
	derivedKey, err := deriveKey(opts.hashOpts, key, blockSize)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "init", cryptoerr.StatusMACInitInvalidArg, err)
	}

	innerHash, err := hash.Init(opts.hashOpts)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "init", cryptoerr.StatusMACInitOutOfMemory, err)
	}

	ikey := make([]byte, blockSize)
	for i := range ikey {
		ikey[i] = derivedKey[i] ^ 0x36
	}
	if err := innerHash.Digest(ikey); err != nil {
		return nil, cryptoerr.Wrap(family, "init", cryptoerr.StatusMACInitInvalidArg, err)
	}
	allocator.Zero(ikey)

	return &Context{options: opts, innerHash: innerHash, key: derivedKey}, nil
}

// deriveKey implements spec §4.5 step 1-2: if |K| > blockSize, replace K
// with H(K); then zero-extend (or truncate-to-exact, which never happens
// here since H's output is <= blockSize for every registered algorithm) to
// blockSize bytes.
func deriveKey(hashOpts *hash.Options, key []byte, blockSize int) ([]byte, error) {
	out := make([]byte, blockSize)

	if len(key) > blockSize {
		ctx, err := hash.Init(hashOpts)
		if err != nil {
			return nil, err
		}
		if err := ctx.Digest(key); err != nil {
			return nil, err
		}
		digestBuf, err := buffer.New(allocator.System, hashOpts.DigestSize())
		if err != nil {
			return nil, err
		}
		if err := ctx.Finalize(digestBuf); err != nil {
			return nil, err
		}
		ctx.Dispose()
		copy(out, digestBuf.Data())
		digestBuf.Dispose()
		return out, nil
	}

	copy(out, key)
	return out, nil
}

// Digest forwards data to the seeded inner hash (spec §4.5 step 4).
func (c *Context) Digest(data []byte) error {
	if c.finalized {
		return cryptoerr.New(family, "digest", cryptoerr.StatusMACDigestInvalidArg)
	}
	return c.innerHash.Digest(data)
}

// Finalize completes the HMAC into out (must equal options.MACSize()),
// implementing spec §4.5 step 5: complete inner hash, compute K_o = K XOR
// 0x5C, then hash K_o || inner into out.
func (c *Context) Finalize(out *buffer.Buffer) error {
	if c.finalized {
		return cryptoerr.New(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg)
	}
	if out.Size() != c.options.MACSize() {
		return cryptoerr.New(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg)
	}

	inner, err := buffer.New(allocator.System, c.options.hashOpts.DigestSize())
	if err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACInitOutOfMemory, err)
	}
	defer inner.Dispose()
	if err := c.innerHash.Finalize(inner); err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg, err)
	}
	c.innerHash.Dispose()

	outerHash, err := hash.Init(c.options.hashOpts)
	if err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACInitOutOfMemory, err)
	}
	defer outerHash.Dispose()

	okey := make([]byte, len(c.key))
	for i := range okey {
		okey[i] = c.key[i] ^ 0x5c
	}
	defer allocator.Zero(okey)

	if err := outerHash.Digest(okey); err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg, err)
	}
	if err := outerHash.Digest(inner.Data()); err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg, err)
	}
	if err := outerHash.Finalize(out); err != nil {
		return cryptoerr.Wrap(family, "finalize", cryptoerr.StatusMACFinalizeInvalidArg, err)
	}

	c.finalized = true
	return nil
}

// Dispose clears owned secret material. Idempotent.
func (c *Context) Dispose() {
	if c.innerHash != nil {
		c.innerHash.Dispose()
		c.innerHash = nil
	}
	allocator.Zero(c.key)
	c.finalized = true
}

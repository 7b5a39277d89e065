// Package hash implements the hash family contract from spec §4.4: a
// per-algorithm Options descriptor and a strictly linear
// init -> digest* -> finalize Context.
package hash

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "hash"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0004

// Algorithm selectors, wire-stable per spec §6.
const (
	SHA256      registry.AlgorithmID = 0x0000_0100
	SHA384      registry.AlgorithmID = 0x0000_0200
	SHA512      registry.AlgorithmID = 0x0000_0400
	SHA512_224  registry.AlgorithmID = 0x0000_0800
	SHA512_256  registry.AlgorithmID = 0x0000_1000
	BLAKE3      registry.AlgorithmID = 0x0000_2000
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// Engine is the per-algorithm compression-function vtable a concrete
// implementation provides. The compression function itself is an external
// collaborator (spec §1); Engine is the seam cryptosuite owns.
type Engine interface {
	// New returns a fresh hash.Hash-shaped state machine.
	New() State
}

// State is the minimal hash state machine an Engine's New() returns: write
// bytes, then sum into a fixed-size digest. This matches the shape of
// Go's stdlib hash.Hash, which crypto/sha256 and crypto/sha512 already
// satisfy.
type State interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// Descriptor is the immutable per-family algorithm descriptor from spec §3:
// size parameters plus the vtable, registered once per algorithm.
type Descriptor struct {
	Algorithm registry.AlgorithmID
	DigestSize int
	BlockSize  int
	Engine     Engine
}

// Options is a live per-family object bound to an allocator, spec §4.4.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions finds the descriptor for algorithm in the registry, binds
// alloc, and returns a live Options. It fails with
// StatusHashOptionsInitMissingImpl if the algorithm was never registered.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusHashOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusHashOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

// DigestSize is the fixed output size in bytes for this algorithm.
func (o *Options) DigestSize() int { return o.descriptor.DigestSize }

// BlockSize is the compression block size in bytes for this algorithm.
func (o *Options) BlockSize() int { return o.descriptor.BlockSize }

// Dispose releases the Options. Hash options own no secret material, so this
// is a formality to satisfy the Disposable contract uniformly.
func (o *Options) Dispose() {}

// Context is per-instance hash state, spec §4.4: init -> digest* -> finalize,
// no reuse after finalize.
type Context struct {
	options   *Options
	state     State
	finalized bool
}

// Init begins a new hash context bound to opts.
func Init(opts *Options) (*Context, error) {
	return &Context{options: opts, state: opts.descriptor.Engine.New()}, nil
}

// Digest feeds more bytes into the running hash. It is an error to call
// Digest after Finalize.
func (c *Context) Digest(data []byte) error {
	if c.finalized {
		return cryptoerr.New(family, "digest", cryptoerr.StatusHashDigestInvalidArg)
	}
	c.state.Write(data)
	return nil
}

// Finalize completes the hash into out, which must be exactly
// options.DigestSize() bytes. The context may not be reused afterward.
func (c *Context) Finalize(out *buffer.Buffer) error {
	if c.finalized {
		return cryptoerr.New(family, "finalize", cryptoerr.StatusHashFinalizeInvalidArg)
	}
	if out.Size() != c.options.DigestSize() {
		return cryptoerr.New(family, "finalize", cryptoerr.StatusHashFinalizeInvalidArg)
	}
	sum := c.state.Sum(nil)
	copy(out.Data(), sum)
	c.finalized = true
	return nil
}

// Dispose clears the context's state. Idempotent.
func (c *Context) Dispose() {
	if c.state != nil {
		c.state.Reset()
		c.state = nil
	}
	c.finalized = true
}

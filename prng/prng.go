// Package prng implements the PRNG family contract from spec §4.6: a
// process-wide registered source, bound into a live Options, producing
// Context instances that read cryptographically random bytes on demand.
package prng

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "prng"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0006

// SourceOperatingSystem selects the CPRNG provided by the OS, grounded on
// original_source/src/prng/unix/vccrypt_prng_source_os_unix.c (/dev/urandom
// on Unix; Go's crypto/rand already abstracts the OS source portably).
const SourceOperatingSystem registry.AlgorithmID = 0x0000_0100

// MockSource is installed by the mock package for test doubles.
const MockSource registry.AlgorithmID = 0x8000_0000

// Source is the per-algorithm vtable a concrete PRNG registers. Read must
// fill buf completely or return an error; it may block while reseeding.
type Source interface {
	Read(buf []byte) error
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm registry.AlgorithmID
	Source    Source
}

// Options is a live per-family object bound to an allocator and source.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions looks up source in the registry and binds alloc to it.
func NewOptions(alloc allocator.Allocator, source registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, source)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusPRNGOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusPRNGOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

// Dispose releases the Options. PRNG options own no secret material.
func (o *Options) Dispose() {}

// Context is a live PRNG instance, spec §4.6.
type Context struct {
	options *Options
}

// Init opens a PRNG instance for opts. For the OS source this is a no-op on
// the Go runtime (crypto/rand manages its own device handle), but the
// device-open-failure status is preserved for a source that needs it.
func Init(opts *Options) (*Context, error) {
	return &Context{options: opts}, nil
}

// Read fills dst completely with cryptographically random bytes, spec
// §4.6's vccrypt_prng_read_c equivalent operating directly on a byte slice.
func (c *Context) Read(dst []byte) error {
	if err := c.options.descriptor.Source.Read(dst); err != nil {
		return cryptoerr.Wrap(family, "read", cryptoerr.StatusPRNGReadFailure, err)
	}
	return nil
}

// ReadBuffer fills dst's entire backing buffer, failing with
// StatusPRNGReadWouldOverwrite if dst is zero-sized (nothing to fill),
// mirroring original_source's read-would-overwrite guard.
func (c *Context) ReadBuffer(dst *buffer.Buffer) error {
	if dst.Size() == 0 {
		return cryptoerr.New(family, "read", cryptoerr.StatusPRNGReadWouldOverwrite)
	}
	return c.Read(dst.Data())
}

// ReadUUID fills uuid with 16 raw random bytes. Per spec §4.6, this PRNG UUID
// is NOT an RFC 4122 UUID: no version or variant bits are set, the bytes are
// simply 16 bytes of entropy.
func (c *Context) ReadUUID(uuid *[16]byte) error {
	return c.Read(uuid[:])
}

// Dispose releases the Context. Idempotent; no-op for the OS source.
func (c *Context) Dispose() {}

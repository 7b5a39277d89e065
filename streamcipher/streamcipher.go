// Package streamcipher implements the stream cipher family from spec §4.8:
// a short-term key and a once-per-key IV produce a keystream that can
// encrypt up to the algorithm's maximum message size. Unlike the block
// cipher family, encryption and decryption run through an output buffer at
// a tracked offset so callers can interleave multiple writes into one
// growing buffer (IV header followed by ciphertext).
package streamcipher

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "stream"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0005

// Algorithm selectors, wire-stable per spec §6.
const (
	AES256CTRFIPS registry.AlgorithmID = 0x0000_0100
	AES256CTR2X   registry.AlgorithmID = 0x0000_0200
	AES256CTR3X   registry.AlgorithmID = 0x0000_0400
	AES256CTR4X   registry.AlgorithmID = 0x0000_0800

	// MockAlgorithm is installed by the mock package for test doubles.
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// KeyStream is the per-algorithm vtable: expand a key into a keystream
// generator seeded by a once-per-key IV, producing bytes to XOR with
// plaintext/ciphertext starting at an absolute stream offset.
type KeyStream interface {
	Expand(key []byte) (KeyStreamState, error)
}

// KeyStreamState seeds itself from an IV and then XORs data at an absolute
// byte offset into the keystream.
type KeyStreamState interface {
	Seed(iv []byte) error
	XORAt(offset uint64, dst, src []byte)
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm          registry.AlgorithmID
	KeySize            int
	IVSize             int
	MaximumMessageSize uint64
	Stream             KeyStream
}

// Options is a live per-family object, spec §4.8.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions looks up algorithm in the registry and binds alloc to it.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusStreamOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusStreamOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

// KeySize is the required key size in bytes.
func (o *Options) KeySize() int { return o.descriptor.KeySize }

// IVSize is the required IV size in bytes.
func (o *Options) IVSize() int { return o.descriptor.IVSize }

// Dispose releases the Options. Stream options own no secret material.
func (o *Options) Dispose() {}

// Context is a live stream cipher instance bound to one key.
type Context struct {
	options *Options
	state   KeyStreamState
}

// Init expands key into a fresh Context. The same Context may be reused
// across multiple StartEncryption/StartDecryption calls as long as each uses
// a distinct IV.
func Init(opts *Options, key []byte) (*Context, error) {
	if len(key) != opts.descriptor.KeySize {
		return nil, cryptoerr.New(family, "init", cryptoerr.StatusStreamInitBadEncryptionKey)
	}
	state, err := opts.descriptor.Stream.Expand(key)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "init", cryptoerr.StatusStreamInitInvalidArg, err)
	}
	return &Context{options: opts, state: state}, nil
}

// StartEncryption seeds the keystream with iv, writing iv verbatim into
// output[0:len(iv)] and returning the new stream offset (always len(iv));
// spec §4.8 step: IV MUST be used only once per key, ever.
func (c *Context) StartEncryption(iv []byte, output []byte) (int, error) {
	if len(iv) != c.options.descriptor.IVSize || len(output) < len(iv) {
		return 0, cryptoerr.New(family, "start_encryption", cryptoerr.StatusStreamStartEncryptionInvalidArg)
	}
	if err := c.state.Seed(iv); err != nil {
		return 0, cryptoerr.Wrap(family, "start_encryption", cryptoerr.StatusStreamStartEncryptionInvalidArg, err)
	}
	copy(output, iv)
	return len(iv), nil
}

// StartDecryption seeds the keystream by reading the IV back out of
// input[0:IVSize], returning the new stream offset.
func (c *Context) StartDecryption(input []byte) (int, error) {
	if len(input) < c.options.descriptor.IVSize {
		return 0, cryptoerr.New(family, "start_decryption", cryptoerr.StatusStreamStartEncryptionInvalidArg)
	}
	iv := input[:c.options.descriptor.IVSize]
	if err := c.state.Seed(iv); err != nil {
		return 0, cryptoerr.Wrap(family, "start_decryption", cryptoerr.StatusStreamStartEncryptionInvalidArg, err)
	}
	return len(iv), nil
}

// ContinueEncryption and ContinueDecryption reseed the keystream for a
// previously-started stream resumed at offset, without re-emitting the IV,
// e.g. when a connection is reopened mid-stream with persisted state.
func (c *Context) ContinueEncryption(iv []byte) error {
	return c.state.Seed(iv)
}

func (c *Context) ContinueDecryption(iv []byte) error {
	return c.state.Seed(iv)
}

// Encrypt XORs input with the keystream starting at *offset into output,
// advancing *offset by len(input).
func (c *Context) Encrypt(input []byte, output []byte, offset *int) error {
	if len(output) < len(input) {
		return cryptoerr.New(family, "encrypt", cryptoerr.StatusStreamInitInvalidArg)
	}
	c.state.XORAt(uint64(*offset), output[:len(input)], input)
	*offset += len(input)
	return nil
}

// Decrypt XORs input with the keystream starting at *offset into output,
// advancing *offset by len(input). AES-CTR is symmetric, so this is
// identical to Encrypt; it is kept as a distinct method to match the
// family's encrypt/decrypt contract.
func (c *Context) Decrypt(input []byte, output []byte, offset *int) error {
	return c.Encrypt(input, output, offset)
}

// Dispose clears the expanded keystream state. Idempotent.
func (c *Context) Dispose() {
	c.state = nil
}

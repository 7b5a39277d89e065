// Package blockcipher implements the block cipher family from spec §4.7:
// single-block CBC-chained encrypt/decrypt, with the caller supplying the
// chaining IV for every block (first block: random IV; later blocks: the
// previous ciphertext block). This complements the stream cipher family and
// is used to wrap short-term keys with a long-term shared secret.
package blockcipher

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/registry"
)

const family = "block"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x0007

// Algorithm selectors, wire-stable per spec §6.
const (
	AES256CBCFIPS registry.AlgorithmID = 0x0100_0000
	AES256CBC2X   registry.AlgorithmID = 0x0200_0000
	AES256CBC3X   registry.AlgorithmID = 0x0400_0000
	AES256CBC4X   registry.AlgorithmID = 0x0800_0000

	// MockAlgorithm is installed by the mock package for test doubles.
	MockAlgorithm registry.AlgorithmID = 0x8000_0000
)

// Cipher is the per-algorithm single-block vtable a concrete implementation
// provides: expand key into block state, then encrypt/decrypt one
// BlockSize-sized block under a caller-supplied chaining IV.
type Cipher interface {
	Expand(key []byte, encrypt bool) (CipherState, error)
}

// CipherState is an expanded key schedule bound to one direction.
type CipherState interface {
	EncryptBlock(iv, input, output []byte)
	DecryptBlock(iv, input, output []byte)
}

// Descriptor is the immutable per-algorithm registration record.
type Descriptor struct {
	Algorithm          registry.AlgorithmID
	KeySize            int
	IVSize             int
	MaximumMessageSize uint64
	Cipher             Cipher
}

// Options is a live per-family object, spec §4.7.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor
}

// NewOptions looks up algorithm in the registry and binds alloc to it.
func NewOptions(alloc allocator.Allocator, algorithm registry.AlgorithmID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, algorithm)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusBlockOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusBlockOptionsInitMissingImpl)
	}
	return &Options{alloc: alloc, descriptor: desc}, nil
}

// KeySize is the required key size in bytes.
func (o *Options) KeySize() int { return o.descriptor.KeySize }

// IVSize is the block/IV size in bytes.
func (o *Options) IVSize() int { return o.descriptor.IVSize }

// Dispose releases the Options. Block options own no secret material.
func (o *Options) Dispose() {}

// Context is a live, direction-bound block cipher instance.
type Context struct {
	options *Options
	state   CipherState
	encrypt bool
}

// Init expands key into a Context for either encryption or decryption. key
// must be exactly options.KeySize() bytes.
func Init(opts *Options, key *buffer.Buffer, encrypt bool) (*Context, error) {
	if key.Size() != opts.descriptor.KeySize {
		if encrypt {
			return nil, cryptoerr.New(family, "init", cryptoerr.StatusBlockInitBadEncryptionKey)
		}
		return nil, cryptoerr.New(family, "init", cryptoerr.StatusBlockInitBadDecryptionKey)
	}
	state, err := opts.descriptor.Cipher.Expand(key.Data(), encrypt)
	if err != nil {
		return nil, cryptoerr.Wrap(family, "init", cryptoerr.StatusBlockInitInvalidArg, err)
	}
	return &Context{options: opts, state: state, encrypt: encrypt}, nil
}

// Encrypt encrypts exactly one IVSize()-sized block of input under iv,
// writing IVSize() bytes to output. Chain blocks by feeding the previous
// output as the next call's iv.
func (c *Context) Encrypt(iv, input, output []byte) error {
	if !c.encrypt {
		return cryptoerr.New(family, "encrypt", cryptoerr.StatusBlockInitInvalidArg)
	}
	if len(iv) != c.options.descriptor.IVSize || len(input) != c.options.descriptor.IVSize || len(output) != c.options.descriptor.IVSize {
		return cryptoerr.New(family, "encrypt", cryptoerr.StatusBlockInitInvalidArg)
	}
	c.state.EncryptBlock(iv, input, output)
	return nil
}

// Decrypt decrypts exactly one IVSize()-sized block of input under iv,
// writing IVSize() bytes to output. Chain blocks by feeding the previous
// input ciphertext block as the next call's iv.
func (c *Context) Decrypt(iv, input, output []byte) error {
	if c.encrypt {
		return cryptoerr.New(family, "decrypt", cryptoerr.StatusBlockInitInvalidArg)
	}
	if len(iv) != c.options.descriptor.IVSize || len(input) != c.options.descriptor.IVSize || len(output) != c.options.descriptor.IVSize {
		return cryptoerr.New(family, "decrypt", cryptoerr.StatusBlockInitInvalidArg)
	}
	c.state.DecryptBlock(iv, input, output)
	return nil
}

// Dispose clears the expanded key schedule. Idempotent.
func (c *Context) Dispose() {
	c.state = nil
}

// Package suite implements suite composition from spec §4.13: a single
// registered bundle that names one concrete algorithm per family, so an
// application selects a suite identifier once and gets a consistent,
// mutually-compatible set of primitives rather than wiring each family by
// hand. Modeled on original_source/src/suite/vccrypt_suite_register_velo_v1.c,
// which is itself a thin composition layer over the per-family abstract
// factory lookups this module already implements.
package suite

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/blockcipher"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/internal/logging"
	"github.com/luxfi/cryptosuite/kdf"
	"github.com/luxfi/cryptosuite/keyagreement"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/prng"
	"github.com/luxfi/cryptosuite/registry"
	"github.com/luxfi/cryptosuite/signature"
	"github.com/luxfi/cryptosuite/streamcipher"
)

const family = "suite"

// InterfaceTag is this family's registry interface tag.
const InterfaceTag registry.InterfaceTag = 0x000C

// ID identifies a registered suite, spec §4.13.
type ID uint32

// VeloV1 names the suite vccrypt_suite_register_velo_v1.c wires: SHA-512,
// HMAC-SHA-512, Ed25519, the OS PRNG source, X25519/SHA-512 for
// authentication key agreement, X25519/SHA-512-256 for cipher key
// agreement, cascaded 2X AES-256-CBC, and cascaded 2X AES-256-CTR.
const VeloV1 ID = 0x0000_0001

// Descriptor names one algorithm selector per family for a given suite.
type Descriptor struct {
	ID                 ID
	HashAlgorithm      registry.AlgorithmID
	SignAlgorithm      registry.AlgorithmID
	PRNGSource         registry.AlgorithmID
	MACAlgorithm       registry.AlgorithmID
	MACShortAlgorithm  registry.AlgorithmID
	KeyAuthAlgorithm   registry.AlgorithmID
	KeyCipherAlgorithm registry.AlgorithmID
	KDFAlgorithm       registry.AlgorithmID
	KDFHMACAlgorithm   registry.AlgorithmID
	BlockAlgorithm     registry.AlgorithmID
	StreamAlgorithm    registry.AlgorithmID
}

// Options is a live, fully-resolved crypto suite: one Options object per
// bound family, ready to pass to that family's Init.
type Options struct {
	alloc      allocator.Allocator
	descriptor Descriptor

	hash       *hash.Options
	sign       *signature.Options
	prng       *prng.Options
	mac        *mac.Options
	macShort   *mac.Options
	keyAuth    *keyagreement.Options
	keyCipher  *keyagreement.Options
	kdf        *kdf.Options
	block      *blockcipher.Options
	stream     *streamcipher.Options
}

// NewOptions resolves id to a Descriptor and eagerly initializes every
// per-family Options it names, failing closed if any one family's algorithm
// is unregistered.
func NewOptions(alloc allocator.Allocator, id ID) (*Options, error) {
	entry, ok := registry.Find(InterfaceTag, registry.AlgorithmID(id))
	if !ok {
		logging.Default().Error("suite: unregistered suite id", "id", id)
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusSuiteOptionsInitMissingImpl)
	}
	desc, ok := entry.Descriptor.(Descriptor)
	if !ok {
		return nil, cryptoerr.New(family, "options_init", cryptoerr.StatusSuiteOptionsInitMissingImpl)
	}

	o := &Options{alloc: alloc, descriptor: desc}

	// fail logs which sub-family init failed (a suite construction problem
	// is easiest to diagnose if the log names the family, not just "suite
	// init failed"), tears down whatever sub-options already succeeded, and
	// returns the wrapped error.
	fail := func(subFamily string, err error) (*Options, error) {
		logging.Default().Warn("suite: sub-family options init failed", "suite", id, "family", subFamily, "error", err)
		o.Dispose()
		return nil, cryptoerr.Wrap(family, "options_init", cryptoerr.StatusSuiteOptionsInitMissingImpl, err)
	}

	var err error
	if o.hash, err = hash.NewOptions(alloc, desc.HashAlgorithm); err != nil {
		return fail("hash", err)
	}
	if o.sign, err = signature.NewOptions(alloc, desc.SignAlgorithm); err != nil {
		return fail("signature", err)
	}
	if o.prng, err = prng.NewOptions(alloc, desc.PRNGSource); err != nil {
		return fail("prng", err)
	}
	if o.mac, err = mac.NewOptions(alloc, desc.MACAlgorithm); err != nil {
		return fail("mac", err)
	}
	if o.macShort, err = mac.NewOptions(alloc, desc.MACShortAlgorithm); err != nil {
		return fail("mac_short", err)
	}
	if o.keyAuth, err = keyagreement.NewOptions(alloc, desc.KeyAuthAlgorithm); err != nil {
		return fail("key_auth", err)
	}
	if o.keyCipher, err = keyagreement.NewOptions(alloc, desc.KeyCipherAlgorithm); err != nil {
		return fail("key_cipher", err)
	}
	if o.kdf, err = kdf.NewOptions(alloc, desc.KDFAlgorithm, desc.KDFHMACAlgorithm); err != nil {
		return fail("kdf", err)
	}
	if o.block, err = blockcipher.NewOptions(alloc, desc.BlockAlgorithm); err != nil {
		return fail("block", err)
	}
	if o.stream, err = streamcipher.NewOptions(alloc, desc.StreamAlgorithm); err != nil {
		return fail("stream", err)
	}

	logging.Default().Debug("suite: options constructed", "suite", id)
	return o, nil
}

// HashInit creates a hash context using this suite's hash algorithm.
func (o *Options) HashInit() (*hash.Context, error) { return hash.Init(o.hash) }

// PRNGInit opens this suite's PRNG source.
func (o *Options) PRNGInit() (*prng.Context, error) { return prng.Init(o.prng) }

// SignatureInit creates a digital signature context using this suite's
// signature algorithm.
func (o *Options) SignatureInit() (*signature.Context, error) { return signature.Init(o.sign) }

// MACInit creates a long MAC context keyed by key.
func (o *Options) MACInit(key []byte) (*mac.Context, error) { return mac.Init(o.mac, key) }

// MACShortInit creates a short MAC context keyed by key.
func (o *Options) MACShortInit(key []byte) (*mac.Context, error) { return mac.Init(o.macShort, key) }

// AuthKeyAgreementInit creates a key agreement context using this suite's
// authentication key agreement algorithm.
func (o *Options) AuthKeyAgreementInit() (*keyagreement.Context, error) {
	return keyagreement.Init(o.keyAuth)
}

// CipherKeyAgreementInit creates a key agreement context using this suite's
// symmetric-cipher key agreement algorithm.
func (o *Options) CipherKeyAgreementInit() (*keyagreement.Context, error) {
	return keyagreement.Init(o.keyCipher)
}

// KeyDerivationInit creates a key derivation context using this suite's KDF.
func (o *Options) KeyDerivationInit() (*kdf.Context, error) { return kdf.Init(o.kdf) }

// BlockCipherInit creates a block cipher context keyed by key.
func (o *Options) BlockCipherInit(key *buffer.Buffer, encrypt bool) (*blockcipher.Context, error) {
	return blockcipher.Init(o.block, key, encrypt)
}

// StreamCipherInit creates a stream cipher context keyed by key.
func (o *Options) StreamCipherInit(key []byte) (*streamcipher.Context, error) {
	return streamcipher.Init(o.stream, key)
}

// BufferForHash allocates a buffer sized for this suite's hash digest.
func (o *Options) BufferForHash() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.hash.DigestSize())
}

// BufferForSignaturePrivateKey allocates a buffer sized for this suite's
// signature private key.
func (o *Options) BufferForSignaturePrivateKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.sign.PrivateKeySize())
}

// BufferForSignaturePublicKey allocates a buffer sized for this suite's
// signature public key.
func (o *Options) BufferForSignaturePublicKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.sign.PublicKeySize())
}

// BufferForSignature allocates a buffer sized for this suite's signature.
func (o *Options) BufferForSignature() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.sign.SignatureSize())
}

// BufferForMACPrivateKey allocates a buffer sized for the named MAC's key.
func (o *Options) BufferForMACPrivateKey(short bool) (*buffer.Buffer, error) {
	if short {
		return buffer.New(o.alloc, o.macShort.MACSize())
	}
	return buffer.New(o.alloc, o.mac.MACSize())
}

// BufferForMACAuthenticationCode allocates a buffer sized for the named
// MAC's output.
func (o *Options) BufferForMACAuthenticationCode(short bool) (*buffer.Buffer, error) {
	if short {
		return buffer.New(o.alloc, o.macShort.MACSize())
	}
	return buffer.New(o.alloc, o.mac.MACSize())
}

// BufferForAuthKeyAgreementPrivateKey allocates a buffer sized for this
// suite's authentication key agreement private key.
func (o *Options) BufferForAuthKeyAgreementPrivateKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyAuth.PrivateKeySize())
}

// BufferForAuthKeyAgreementPublicKey allocates a buffer sized for this
// suite's authentication key agreement public key.
func (o *Options) BufferForAuthKeyAgreementPublicKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyAuth.PublicKeySize())
}

// BufferForAuthKeyAgreementNonce allocates a buffer sized for this suite's
// authentication key agreement nonce.
func (o *Options) BufferForAuthKeyAgreementNonce() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyAuth.MinimumNonceSize())
}

// BufferForAuthKeyAgreementSharedSecret allocates a buffer sized for this
// suite's authentication key agreement shared secret.
func (o *Options) BufferForAuthKeyAgreementSharedSecret() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyAuth.SharedSecretSize())
}

// BufferForCipherKeyAgreementPrivateKey allocates a buffer sized for this
// suite's cipher key agreement private key.
func (o *Options) BufferForCipherKeyAgreementPrivateKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyCipher.PrivateKeySize())
}

// BufferForCipherKeyAgreementPublicKey allocates a buffer sized for this
// suite's cipher key agreement public key.
func (o *Options) BufferForCipherKeyAgreementPublicKey() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyCipher.PublicKeySize())
}

// BufferForCipherKeyAgreementNonce allocates a buffer sized for this suite's
// cipher key agreement nonce.
func (o *Options) BufferForCipherKeyAgreementNonce() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyCipher.MinimumNonceSize())
}

// BufferForCipherKeyAgreementSharedSecret allocates a buffer sized for this
// suite's cipher key agreement shared secret.
func (o *Options) BufferForCipherKeyAgreementSharedSecret() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, o.keyCipher.SharedSecretSize())
}

// BufferForUUID allocates a 16-byte buffer for holding a raw UUID.
func (o *Options) BufferForUUID() (*buffer.Buffer, error) {
	return buffer.New(o.alloc, 16)
}

// Dispose releases every per-family Options this suite resolved. Safe to
// call on a partially-constructed Options (nil fields are skipped).
func (o *Options) Dispose() {
	logging.Default().Debug("suite: options torn down", "suite", o.descriptor.ID)
	if o.hash != nil {
		o.hash.Dispose()
	}
	if o.sign != nil {
		o.sign.Dispose()
	}
	if o.prng != nil {
		o.prng.Dispose()
	}
	if o.mac != nil {
		o.mac.Dispose()
	}
	if o.macShort != nil {
		o.macShort.Dispose()
	}
	if o.keyAuth != nil {
		o.keyAuth.Dispose()
	}
	if o.keyCipher != nil {
		o.keyCipher.Dispose()
	}
	if o.kdf != nil {
		o.kdf.Dispose()
	}
	if o.block != nil {
		o.block.Dispose()
	}
	if o.stream != nil {
		o.stream.Dispose()
	}
}

package kdf

import (
	"encoding/binary"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

// pbkdf2Engine implements RFC 2898's PBKDF2 over the caller-supplied HMAC
// PRF, spec §4.11. original_source's key_derivation.h leaves the algorithm
// body to vccrypt_key_derivation_register_pbkdf2(), which was not present in
// the filtered retrieval pack; the construction below follows RFC 2898 §5.2
// directly rather than golang.org/x/crypto/pbkdf2, since this family's PRF is
// the mac package's own HMAC construction, not a stdlib hash.Hash factory.
type pbkdf2Engine struct{}

func (pbkdf2Engine) DeriveKey(derivedKey []byte, prf func(key []byte) (*mac.Context, error), hLen int, pass, salt []byte, rounds uint32) error {
	dkLen := len(derivedKey)
	numBlocks := (dkLen + hLen - 1) / hLen

	for blockIndex := 1; blockIndex <= numBlocks; blockIndex++ {
		block, err := deriveBlock(prf, pass, salt, rounds, uint32(blockIndex), hLen)
		if err != nil {
			return err
		}

		offset := (blockIndex - 1) * hLen
		copy(derivedKey[offset:], block)
	}
	return nil
}

// deriveBlock computes the T_i block from RFC 2898 §5.2: U_1 = PRF(P, S ||
// INT(i)), U_j = PRF(P, U_{j-1}) for j in [2, rounds], T_i = U_1 ^ ... ^
// U_rounds.
func deriveBlock(prf func(key []byte) (*mac.Context, error), pass, salt []byte, rounds, blockIndex uint32, hLen int) ([]byte, error) {
	intBlock := make([]byte, 4)
	binary.BigEndian.PutUint32(intBlock, blockIndex)

	u, err := runPRF(prf, pass, hLen, salt, intBlock)
	if err != nil {
		return nil, err
	}

	t := append([]byte(nil), u...)
	for round := uint32(2); round <= rounds; round++ {
		u, err = runPRF(prf, pass, hLen, u)
		if err != nil {
			return nil, err
		}
		for i := range t {
			t[i] ^= u[i]
		}
	}
	return t, nil
}

func runPRF(prf func(key []byte) (*mac.Context, error), pass []byte, hLen int, chunks ...[]byte) ([]byte, error) {
	ctx, err := prf(pass)
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		if err := ctx.Digest(c); err != nil {
			return nil, err
		}
	}
	out, err := buffer.New(allocator.System, hLen)
	if err != nil {
		return nil, err
	}
	if err := ctx.Finalize(out); err != nil {
		return nil, err
	}
	ctx.Dispose()
	result := append([]byte(nil), out.Data()...)
	out.Dispose()
	return result, nil
}

var registerPBKDF2 registry.Once

// RegisterPBKDF2 registers the PBKDF2 key derivation algorithm.
func RegisterPBKDF2() {
	registerPBKDF2.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: PBKDF2,
			Descriptor: Descriptor{
				Algorithm: PBKDF2,
				Engine:    pbkdf2Engine{},
			},
		})
	})
}

func init() {
	RegisterPBKDF2()
}

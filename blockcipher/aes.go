package blockcipher

import (
	"crypto/aes"
	"crypto/sha512"

	"github.com/luxfi/cryptosuite/registry"
)

// crypto/aes's block cipher is an external collaborator per spec §1; this
// file wraps it into the Cipher/CipherState seam and adds the cascaded
// multi-pass variants (2X/3X/4X) this family names.

type aesFIPSCipher struct{}

func (aesFIPSCipher) Expand(key []byte, encrypt bool) (CipherState, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesSingleState{block: block, encrypt: encrypt}, nil
}

// aesSingleState performs one AES-256-CBC pass: a single 16-byte block
// encrypted/decrypted under the caller-supplied chaining iv.
type aesSingleState struct {
	block   interface {
		Encrypt(dst, src []byte)
		Decrypt(dst, src []byte)
	}
	encrypt bool
}

func (s *aesSingleState) EncryptBlock(iv, input, output []byte) {
	xored := make([]byte, len(input))
	for i := range xored {
		xored[i] = input[i] ^ iv[i]
	}
	s.block.Encrypt(output, xored)
}

func (s *aesSingleState) DecryptBlock(iv, input, output []byte) {
	plain := make([]byte, len(input))
	s.block.Decrypt(plain, input)
	for i := range plain {
		output[i] = plain[i] ^ iv[i]
	}
}

// cascadedCipher chains passes independent AES-256-CBC single-block
// operations, each keyed by a subkey derived from the master key via
// SHA-512(key || pass-index), truncated to 32 bytes. This is a deliberate
// design decision (no source for the 2X/3X/4X internals survived in the
// retrieval pack's filtered original_source): cascading with
// independently-derived subkeys gives each extra pass its own key schedule
// rather than reusing the master key, which is the standard construction
// for multi-encryption designs like this one (cf. 2-key/3-key triple-DES).
type cascadedCipher struct {
	passes int
}

type cascadedState struct {
	states  []*aesSingleState
	encrypt bool
}

func subKey(master []byte, pass int) []byte {
	h := sha512.New()
	h.Write(master)
	h.Write([]byte{byte(pass)})
	sum := h.Sum(nil)
	return sum[:32]
}

func (c cascadedCipher) Expand(key []byte, encrypt bool) (CipherState, error) {
	states := make([]*aesSingleState, c.passes)
	for i := 0; i < c.passes; i++ {
		block, err := aes.NewCipher(subKey(key, i))
		if err != nil {
			return nil, err
		}
		states[i] = &aesSingleState{block: block, encrypt: encrypt}
	}
	return &cascadedState{states: states, encrypt: encrypt}, nil
}

func (s *cascadedState) EncryptBlock(iv, input, output []byte) {
	cur := make([]byte, len(input))
	copy(cur, input)
	for _, st := range s.states {
		next := make([]byte, len(output))
		st.EncryptBlock(iv, cur, next)
		cur = next
	}
	copy(output, cur)
}

func (s *cascadedState) DecryptBlock(iv, input, output []byte) {
	cur := make([]byte, len(input))
	copy(cur, input)
	for i := len(s.states) - 1; i >= 0; i-- {
		next := make([]byte, len(output))
		s.states[i].DecryptBlock(iv, cur, next)
		cur = next
	}
	copy(output, cur)
}

var registerAES registry.Once

// RegisterAES registers AES-256-CBC-FIPS and the cascaded 2X/3X/4X variants.
func RegisterAES() {
	registerAES.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CBCFIPS,
			Descriptor: Descriptor{
				Algorithm:          AES256CBCFIPS,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Cipher:             aesFIPSCipher{},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CBC2X,
			Descriptor: Descriptor{
				Algorithm:          AES256CBC2X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Cipher:             cascadedCipher{passes: 2},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CBC3X,
			Descriptor: Descriptor{
				Algorithm:          AES256CBC3X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Cipher:             cascadedCipher{passes: 3},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CBC4X,
			Descriptor: Descriptor{
				Algorithm:          AES256CBC4X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Cipher:             cascadedCipher{passes: 4},
			},
		})
	})
}

func init() {
	RegisterAES()
}

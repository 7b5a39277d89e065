package streamcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha512"

	"github.com/luxfi/cryptosuite/registry"
)

// crypto/aes plus crypto/cipher's CTR mode are external collaborators per
// spec §1; this file adapts them to the KeyStream/KeyStreamState seam and
// layers the cascaded 2X/3X/4X variants on top, mirroring the design
// decision documented in blockcipher/aes.go for the same selector family.
// Unlike blockcipher/aes.go, which derives every pass key with subKey, pass 0
// of a cascaded stream uses the master key itself and only passes 1..n-1 use
// subKey(key, i).

type aesCTRStream struct {
	passes int
}

type aesCTRState struct {
	block  cipher.Block
	passes []cipher.Block
	iv     []byte
}

func (s aesCTRStream) Expand(key []byte) (KeyStreamState, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	state := &aesCTRState{block: block}
	if s.passes > 1 {
		state.passes = make([]cipher.Block, s.passes)
		state.passes[0] = block
		for i := 1; i < s.passes; i++ {
			b, err := aes.NewCipher(subKey(key, i))
			if err != nil {
				return nil, err
			}
			state.passes[i] = b
		}
	}
	return state, nil
}

func subKey(master []byte, pass int) []byte {
	h := sha512.New()
	h.Write(master)
	h.Write([]byte{byte(pass)})
	sum := h.Sum(nil)
	return sum[:32]
}

func (s *aesCTRState) Seed(iv []byte) error {
	s.iv = append([]byte(nil), iv...)
	return nil
}

// streamReaderAt returns a CTR keystream positioned at offset, using the
// 16-byte IV as the initial counter block (this family's IV is the full block
// size, unlike a typical 12-byte GCM-style nonce).
func (s *aesCTRState) streamReaderAt(block cipher.Block, offset uint64) cipher.Stream {
	iv := append([]byte(nil), s.iv...)
	// crypto/cipher's CTR treats the IV as the initial counter; advance it
	// by offset/BlockSize blocks, then skip the remaining offset%BlockSize
	// bytes of keystream so XORKeyStream can start mid-block.
	blocks := offset / aes.BlockSize
	rem := offset % aes.BlockSize
	addCounter(iv, blocks)
	stream := cipher.NewCTR(block, iv)
	if rem > 0 {
		discard := make([]byte, rem)
		stream.XORKeyStream(discard, discard)
	}
	return stream
}

func addCounter(iv []byte, blocks uint64) {
	carry := uint64(0)
	for i := len(iv) - 1; i >= 0 && (blocks > 0 || carry > 0); i-- {
		sum := uint64(iv[i]) + (blocks & 0xFF) + carry
		iv[i] = byte(sum)
		carry = sum >> 8
		blocks >>= 8
	}
}

func (s *aesCTRState) XORAt(offset uint64, dst, src []byte) {
	if len(s.passes) == 0 {
		stream := s.streamReaderAt(s.block, offset)
		stream.XORKeyStream(dst, src)
		return
	}
	cur := append([]byte(nil), src...)
	for _, b := range s.passes {
		stream := s.streamReaderAt(b, offset)
		out := make([]byte, len(cur))
		stream.XORKeyStream(out, cur)
		cur = out
	}
	copy(dst, cur)
}

var registerStreamAES registry.Once

// RegisterAES registers AES-256-CTR-FIPS and the cascaded 2X/3X/4X variants.
func RegisterAES() {
	registerStreamAES.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CTRFIPS,
			Descriptor: Descriptor{
				Algorithm:          AES256CTRFIPS,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Stream:             aesCTRStream{passes: 1},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CTR2X,
			Descriptor: Descriptor{
				Algorithm:          AES256CTR2X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Stream:             aesCTRStream{passes: 2},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CTR3X,
			Descriptor: Descriptor{
				Algorithm:          AES256CTR3X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Stream:             aesCTRStream{passes: 3},
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: AES256CTR4X,
			Descriptor: Descriptor{
				Algorithm:          AES256CTR4X,
				KeySize:            32,
				IVSize:             16,
				MaximumMessageSize: 1<<64 - 1,
				Stream:             aesCTRStream{passes: 4},
			},
		})
	})
}

func init() {
	RegisterAES()
}

// Package padding implements PKCS#7 padding over buffer.Buffer, spec §4.12.
// Pad and ReversePad replace the buffer's contents in place (by moving a
// freshly allocated buffer into it), matching the move-semantics original
// vccrypt_buffer_pad/vccrypt_buffer_reverse_pad use.
package padding

import (
	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/cryptoerr"
)

const family = "padding"

// Pad appends PKCS#7 padding to buf so its new size is the smallest
// multiple of blockSize strictly greater than buf's original size (i.e. a
// full extra block of padding is added even when the buffer is already a
// multiple of blockSize). blockSize must be in [1, 255].
func Pad(buf *buffer.Buffer, alloc allocator.Allocator, blockSize int) error {
	if blockSize < 1 || blockSize >= 256 {
		return cryptoerr.New(family, "pad", cryptoerr.StatusBufferInvalidArgument)
	}

	paddingSize := blockSize - (buf.Size() % blockSize)
	newSize := buf.Size() + paddingSize

	padded, err := buffer.New(alloc, newSize)
	if err != nil {
		return cryptoerr.Wrap(family, "pad", cryptoerr.StatusBufferInitOutOfMemory, err)
	}

	copy(padded.Data(), buf.Data())
	paddingByte := byte(paddingSize)
	for i := buf.Size(); i < newSize; i++ {
		padded.Data()[i] = paddingByte
	}

	buffer.Move(buf, padded)
	return nil
}

// ReversePad strips PKCS#7 padding from buf in place, validating that the
// trailing N bytes all equal N per spec §4.12's padding-scheme check.
func ReversePad(buf *buffer.Buffer, alloc allocator.Allocator) error {
	if buf.Size() <= 1 {
		return cryptoerr.New(family, "reverse_pad", cryptoerr.StatusBufferPaddingSchemeInvalid)
	}

	data := buf.Data()
	lastByte := data[buf.Size()-1]
	if lastByte == 0 {
		return cryptoerr.New(family, "reverse_pad", cryptoerr.StatusBufferPaddingSchemeInvalid)
	}

	paddingSize := int(lastByte)
	if paddingSize >= buf.Size() {
		return cryptoerr.New(family, "reverse_pad", cryptoerr.StatusBufferPaddingSchemeInvalid)
	}

	for i := buf.Size() - paddingSize; i < buf.Size(); i++ {
		if data[i] != lastByte {
			return cryptoerr.New(family, "reverse_pad", cryptoerr.StatusBufferPaddingSchemeInvalid)
		}
	}

	unpaddedSize := buf.Size() - paddingSize
	unpadded, err := buffer.New(alloc, unpaddedSize)
	if err != nil {
		return cryptoerr.Wrap(family, "reverse_pad", cryptoerr.StatusBufferInitOutOfMemory, err)
	}
	copy(unpadded.Data(), data[:unpaddedSize])

	buffer.Move(buf, unpadded)
	return nil
}

package streamcipher_test

import (
	"bytes"
	"testing"

	"github.com/luxfi/cryptosuite/registry"
	"github.com/luxfi/cryptosuite/streamcipher"
	"github.com/stretchr/testify/require"
)

func TestAES256CTRFIPS_EncryptDecryptRoundTrip(t *testing.T) {
	opts, err := streamcipher.NewOptions(nil, streamcipher.AES256CTRFIPS)
	require.NoError(t, err)

	key := make([]byte, opts.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	iv := make([]byte, opts.IVSize())
	for i := range iv {
		iv[i] = byte(0xF0 + i)
	}

	plain := []byte("the quick brown fox jumps over the lazy dog, repeated past one block boundary for good measure")

	encCtx, err := streamcipher.Init(opts, key)
	require.NoError(t, err)

	header := make([]byte, opts.IVSize()+len(plain))
	offset, err := encCtx.StartEncryption(iv, header)
	require.NoError(t, err)
	require.Equal(t, opts.IVSize(), offset)

	cipherOut := make([]byte, len(plain))
	require.NoError(t, encCtx.Encrypt(plain, cipherOut, &offset))
	copy(header[opts.IVSize():], cipherOut)

	decCtx, err := streamcipher.Init(opts, key)
	require.NoError(t, err)
	dOffset, err := decCtx.StartDecryption(header)
	require.NoError(t, err)

	recovered := make([]byte, len(plain))
	require.NoError(t, decCtx.Decrypt(header[dOffset:], recovered, &dOffset))
	require.Equal(t, plain, recovered)
	require.False(t, bytes.Equal(cipherOut, plain))
}

func TestAES256CTRWrongKeySizeIsError(t *testing.T) {
	opts, err := streamcipher.NewOptions(nil, streamcipher.AES256CTRFIPS)
	require.NoError(t, err)

	_, err = streamcipher.Init(opts, make([]byte, opts.KeySize()-1))
	require.Error(t, err)
}

func TestContinueEncryptionRestartsKeystreamFromFreshIV(t *testing.T) {
	opts, err := streamcipher.NewOptions(nil, streamcipher.AES256CTRFIPS)
	require.NoError(t, err)

	key := make([]byte, opts.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	firstIV := make([]byte, opts.IVSize())
	for i := range firstIV {
		firstIV[i] = byte(0x11 + i)
	}
	secondIV := make([]byte, opts.IVSize())
	for i := range secondIV {
		secondIV[i] = byte(0x99 - i)
	}

	plain := []byte("message resumed under a fresh IV, same key")

	// Encrypt under firstIV, then reseed mid-session via ContinueEncryption
	// under secondIV and encrypt starting back at offset 0 (a fresh message
	// under the same key must use an unused IV, per spec's (key, iv)
	// uniqueness invariant).
	resumedCtx, err := streamcipher.Init(opts, key)
	require.NoError(t, err)
	header := make([]byte, opts.IVSize())
	_, err = resumedCtx.StartEncryption(firstIV, header)
	require.NoError(t, err)

	require.NoError(t, resumedCtx.ContinueEncryption(secondIV))
	resumedOffset := 0
	resumedCipher := make([]byte, len(plain))
	require.NoError(t, resumedCtx.Encrypt(plain, resumedCipher, &resumedOffset))

	// A brand-new context started directly on secondIV must produce the
	// identical ciphertext: ContinueEncryption's reseed is indistinguishable
	// from a fresh StartEncryption on the same IV.
	freshCtx, err := streamcipher.Init(opts, key)
	require.NoError(t, err)
	freshHeader := make([]byte, opts.IVSize())
	_, err = freshCtx.StartEncryption(secondIV, freshHeader)
	require.NoError(t, err)
	freshOffsetFromZero := 0
	freshCipher := make([]byte, len(plain))
	require.NoError(t, freshCtx.Encrypt(plain, freshCipher, &freshOffsetFromZero))

	require.Equal(t, freshCipher, resumedCipher)
	require.NotEqual(t, resumedCipher, bytes.Repeat([]byte{0}, len(plain)))

	// Decrypting with ContinueDecryption under secondIV recovers plain.
	decCtx, err := streamcipher.Init(opts, key)
	require.NoError(t, err)
	require.NoError(t, decCtx.ContinueDecryption(secondIV))
	decOffset := 0
	recovered := make([]byte, len(plain))
	require.NoError(t, decCtx.Decrypt(resumedCipher, recovered, &decOffset))
	require.Equal(t, plain, recovered)
}

func TestCascadedStreamModesRoundTrip(t *testing.T) {
	for _, alg := range []registry.AlgorithmID{
		streamcipher.AES256CTR2X,
		streamcipher.AES256CTR3X,
		streamcipher.AES256CTR4X,
	} {
		opts, err := streamcipher.NewOptions(nil, alg)
		require.NoError(t, err)

		key := make([]byte, opts.KeySize())
		iv := make([]byte, opts.IVSize())
		plain := []byte("cascade me across multiple aes-ctr passes")

		encCtx, err := streamcipher.Init(opts, key)
		require.NoError(t, err)
		out := make([]byte, opts.IVSize())
		offset, err := encCtx.StartEncryption(iv, out)
		require.NoError(t, err)
		cipherOut := make([]byte, len(plain))
		require.NoError(t, encCtx.Encrypt(plain, cipherOut, &offset))

		decCtx, err := streamcipher.Init(opts, key)
		require.NoError(t, err)
		dOffset, err := decCtx.StartDecryption(iv)
		require.NoError(t, err)
		recovered := make([]byte, len(plain))
		require.NoError(t, decCtx.Decrypt(cipherOut, recovered, &dOffset))
		require.Equal(t, plain, recovered)
	}
}

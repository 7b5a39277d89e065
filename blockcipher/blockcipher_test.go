package blockcipher_test

import (
	"encoding/hex"
	"testing"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/blockcipher"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/registry"
	"github.com/stretchr/testify/require"
)

// NIST SP 800-38A §F.2.5/F.2.6, CBC-AES256.Encrypt/Decrypt, single block 1.
func TestAES256CBC_NISTVector(t *testing.T) {
	key, err := hex.DecodeString("603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")
	require.NoError(t, err)
	iv, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	plain, err := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	require.NoError(t, err)
	wantCipher, err := hex.DecodeString("f58c4c04d6e5f1ba779eabfb5f7bfbd6")
	require.NoError(t, err)

	opts, err := blockcipher.NewOptions(allocator.System, blockcipher.AES256CBCFIPS)
	require.NoError(t, err)

	keyBuf, err := buffer.New(allocator.System, opts.KeySize())
	require.NoError(t, err)
	copy(keyBuf.Data(), key)

	encCtx, err := blockcipher.Init(opts, keyBuf, true)
	require.NoError(t, err)

	cipher := make([]byte, 16)
	require.NoError(t, encCtx.Encrypt(iv, plain, cipher))
	require.Equal(t, wantCipher, cipher)

	decCtx, err := blockcipher.Init(opts, keyBuf, false)
	require.NoError(t, err)

	recovered := make([]byte, 16)
	require.NoError(t, decCtx.Decrypt(iv, cipher, recovered))
	require.Equal(t, plain, recovered)
}

func TestAES256CBCWrongKeySizeIsError(t *testing.T) {
	opts, err := blockcipher.NewOptions(allocator.System, blockcipher.AES256CBCFIPS)
	require.NoError(t, err)

	shortKey, err := buffer.New(allocator.System, opts.KeySize()-1)
	require.NoError(t, err)

	_, err = blockcipher.Init(opts, shortKey, true)
	require.Error(t, err)
}

func TestCascadedModesRoundTrip(t *testing.T) {
	algorithms := map[string]registry.AlgorithmID{
		"2x": blockcipher.AES256CBC2X,
		"3x": blockcipher.AES256CBC3X,
		"4x": blockcipher.AES256CBC4X,
	}
	for name, alg := range algorithms {
		t.Run(name, func(t *testing.T) {
			opts, err := blockcipher.NewOptions(allocator.System, alg)
			require.NoError(t, err)

			keyBuf, err := buffer.New(allocator.System, opts.KeySize())
			require.NoError(t, err)
			for i := range keyBuf.Data() {
				keyBuf.Data()[i] = byte(i)
			}

			iv := make([]byte, opts.IVSize())
			plain := make([]byte, opts.IVSize())
			for i := range plain {
				plain[i] = byte(0xA0 + i)
			}

			encCtx, err := blockcipher.Init(opts, keyBuf, true)
			require.NoError(t, err)
			cipher := make([]byte, opts.IVSize())
			require.NoError(t, encCtx.Encrypt(iv, plain, cipher))

			decCtx, err := blockcipher.Init(opts, keyBuf, false)
			require.NoError(t, err)
			recovered := make([]byte, opts.IVSize())
			require.NoError(t, decCtx.Decrypt(iv, cipher, recovered))

			require.Equal(t, plain, recovered)
			require.NotEqual(t, plain, cipher)
		})
	}
}

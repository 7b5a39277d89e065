package hash_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/registry"
	"github.com/stretchr/testify/require"
)

func TestSHA512_256_ABC(t *testing.T) {
	opts, err := hash.NewOptions(allocator.System, hash.SHA512_256)
	require.NoError(t, err)

	ctx, err := hash.Init(opts)
	require.NoError(t, err)
	require.NoError(t, ctx.Digest([]byte("abc")))

	out, err := buffer.New(allocator.System, opts.DigestSize())
	require.NoError(t, err)
	require.NoError(t, ctx.Finalize(out))

	want := strings.ToLower("53048E2681941EF99B2E29B76B4C7DABE4C2D0C634FC6D46E0E2F13107E7AF23")
	require.Equal(t, want, hex.EncodeToString(out.Data()))
}

func TestFinalizeWrongSizeIsInvalidArg(t *testing.T) {
	opts, err := hash.NewOptions(allocator.System, hash.SHA256)
	require.NoError(t, err)
	ctx, err := hash.Init(opts)
	require.NoError(t, err)

	wrongSize, err := buffer.New(allocator.System, opts.DigestSize()+1)
	require.NoError(t, err)

	require.Error(t, ctx.Finalize(wrongSize))
}

func TestDigestSizes(t *testing.T) {
	cases := []struct {
		name   string
		alg    uint32
		digest int
		block  int
	}{
		{"sha256", uint32(hash.SHA256), 32, 64},
		{"sha384", uint32(hash.SHA384), 48, 128},
		{"sha512", uint32(hash.SHA512), 64, 128},
		{"sha512_224", uint32(hash.SHA512_224), 28, 128},
		{"sha512_256", uint32(hash.SHA512_256), 32, 128},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := hash.NewOptions(allocator.System, registry.AlgorithmID(tc.alg))
			require.NoError(t, err)
			require.Equal(t, tc.digest, opts.DigestSize())
			require.Equal(t, tc.block, opts.BlockSize())
		})
	}
}

func TestBLAKE3_EmptyInput(t *testing.T) {
	opts, err := hash.NewOptions(allocator.System, hash.BLAKE3)
	require.NoError(t, err)
	ctx, err := hash.Init(opts)
	require.NoError(t, err)
	require.NoError(t, ctx.Digest(nil))

	out, err := buffer.New(allocator.System, opts.DigestSize())
	require.NoError(t, err)
	require.NoError(t, ctx.Finalize(out))

	want := "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	require.Equal(t, want, hex.EncodeToString(out.Data()))
}

func TestBLAKE3_DistinctInputsDiffer(t *testing.T) {
	digest := func(data []byte) []byte {
		opts, err := hash.NewOptions(allocator.System, hash.BLAKE3)
		require.NoError(t, err)
		ctx, err := hash.Init(opts)
		require.NoError(t, err)
		require.NoError(t, ctx.Digest(data))
		out, err := buffer.New(allocator.System, opts.DigestSize())
		require.NoError(t, err)
		require.NoError(t, ctx.Finalize(out))
		return out.Data()
	}

	require.NotEqual(t, digest([]byte("a")), digest([]byte("b")))
}

func TestMissingImplementation(t *testing.T) {
	_, err := hash.NewOptions(allocator.System, 0xDEAD_BEEF)
	require.Error(t, err)
}

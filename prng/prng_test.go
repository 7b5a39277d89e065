package prng_test

import (
	"bytes"
	"testing"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/luxfi/cryptosuite/prng"
	"github.com/stretchr/testify/require"
)

func TestReadFillsBuffer(t *testing.T) {
	opts, err := prng.NewOptions(allocator.System, prng.SourceOperatingSystem)
	require.NoError(t, err)
	ctx, err := prng.Init(opts)
	require.NoError(t, err)

	buf := make([]byte, 32)
	require.NoError(t, ctx.Read(buf))
	require.False(t, bytes.Equal(buf, make([]byte, 32)), "expected non-zero random bytes")
}

func TestReadBufferRejectsZeroSized(t *testing.T) {
	opts, err := prng.NewOptions(allocator.System, prng.SourceOperatingSystem)
	require.NoError(t, err)
	ctx, err := prng.Init(opts)
	require.NoError(t, err)

	zeroBuf, err := buffer.New(allocator.System, 0)
	require.NoError(t, err)
	require.Error(t, ctx.ReadBuffer(zeroBuf))
}

func TestReadUUIDTwoDrawsDiffer(t *testing.T) {
	opts, err := prng.NewOptions(allocator.System, prng.SourceOperatingSystem)
	require.NoError(t, err)
	ctx, err := prng.Init(opts)
	require.NoError(t, err)

	var a, b [16]byte
	require.NoError(t, ctx.ReadUUID(&a))
	require.NoError(t, ctx.ReadUUID(&b))
	require.NotEqual(t, a, b, "two draws should not collide")
}

func TestMissingSourceIsError(t *testing.T) {
	_, err := prng.NewOptions(allocator.System, 0xDEAD_BEEF)
	require.Error(t, err)
}

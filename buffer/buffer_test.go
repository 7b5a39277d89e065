package buffer_test

import (
	"testing"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/buffer"
	"github.com/stretchr/testify/require"
)

func TestNewSizesAndZeroes(t *testing.T) {
	b, err := buffer.New(allocator.System, 16)
	require.NoError(t, err)
	require.Equal(t, 16, b.Size())
	for _, c := range b.Data() {
		require.Equal(t, byte(0), c)
	}
}

func TestDisposeZeroesAndEmpties(t *testing.T) {
	b, err := buffer.New(allocator.System, 8)
	require.NoError(t, err)
	copy(b.Data(), []byte("deadbeef"))

	b.Dispose()
	require.Equal(t, 0, b.Size())

	// Idempotent.
	b.Dispose()
}

func TestMoveTransfersOwnership(t *testing.T) {
	src, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)
	copy(src.Data(), []byte{1, 2, 3, 4})
	dst, err := buffer.New(allocator.System, 0)
	require.NoError(t, err)

	buffer.Move(dst, src)

	require.Equal(t, []byte{1, 2, 3, 4}, dst.Data())
	require.Equal(t, 0, src.Size())
}

func TestCopyRequiresEqualSizes(t *testing.T) {
	src, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)
	dst, err := buffer.New(allocator.System, 8)
	require.NoError(t, err)

	require.Error(t, buffer.Copy(dst, src))
}

func TestCopyCopiesBytes(t *testing.T) {
	src, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)
	copy(src.Data(), []byte{9, 8, 7, 6})
	dst, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)

	require.NoError(t, buffer.Copy(dst, src))
	require.Equal(t, src.Data(), dst.Data())
}

func TestReadDataRejectsOverlong(t *testing.T) {
	dst, err := buffer.New(allocator.System, 2)
	require.NoError(t, err)
	require.Error(t, buffer.ReadData(dst, []byte{1, 2, 3}))
}

func TestHexRoundTrip(t *testing.T) {
	for _, tc := range [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	} {
		src, err := buffer.New(allocator.System, len(tc))
		require.NoError(t, err)
		copy(src.Data(), tc)

		hexBuf, err := buffer.NewForHex(allocator.System, len(tc))
		require.NoError(t, err)
		require.NoError(t, buffer.WriteHex(hexBuf, src))

		out, err := buffer.New(allocator.System, len(tc))
		require.NoError(t, err)
		require.NoError(t, buffer.ReadHex(out, hexBuf))
		require.Equal(t, tc, out.Data())
	}
}

func TestReadHexRejectsNonHexDigits(t *testing.T) {
	src, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)
	copy(src.Data(), []byte("zzzz"))

	dst, err := buffer.New(allocator.System, 2)
	require.NoError(t, err)
	require.Error(t, buffer.ReadHex(dst, src))
}

func TestWriteHexRejectsUndersizedDestination(t *testing.T) {
	src, err := buffer.New(allocator.System, 4)
	require.NoError(t, err)
	dst, err := buffer.New(allocator.System, 2)
	require.NoError(t, err)
	require.Error(t, buffer.WriteHex(dst, src))
}

// Base64 vectors from RFC 4648 §10.
func TestBase64EncodeRFC4648Vectors(t *testing.T) {
	cases := []struct {
		plain string
		b64   string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
	}

	for _, tc := range cases {
		src, err := buffer.New(allocator.System, len(tc.plain))
		require.NoError(t, err)
		copy(src.Data(), tc.plain)

		dst, err := buffer.NewForBase64(allocator.System, len(tc.plain))
		require.NoError(t, err)
		require.NoError(t, buffer.WriteBase64(dst, src))
		require.Equal(t, tc.b64, string(dst.Data()))
	}
}

func TestBase64DecodeRFC4648Vectors(t *testing.T) {
	cases := []struct {
		plain string
		b64   string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
	}

	for _, tc := range cases {
		src, err := buffer.New(allocator.System, len(tc.b64))
		require.NoError(t, err)
		copy(src.Data(), tc.b64)

		// ReadBase64 requires room for 3 bytes per 4 input bytes, padding
		// included; only the first decoded bytes are written.
		dst, err := buffer.New(allocator.System, len(tc.b64)*3/4)
		require.NoError(t, err)
		var decoded int
		require.NoError(t, buffer.ReadBase64(dst, src, &decoded))
		require.Equal(t, len(tc.plain), decoded)
		require.Equal(t, tc.plain, string(dst.Data()[:decoded]))
	}
}

func TestBase64DecodeSkipsNonAlphabetBytes(t *testing.T) {
	src, err := buffer.New(allocator.System, len("Zm9v\n"))
	require.NoError(t, err)
	copy(src.Data(), "Zm9v\n")

	dst, err := buffer.New(allocator.System, 3)
	require.NoError(t, err)
	var decoded int
	require.NoError(t, buffer.ReadBase64(dst, src, &decoded))
	require.Equal(t, 3, decoded)
	require.Equal(t, "foo", string(dst.Data()))
}

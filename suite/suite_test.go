package suite_test

import (
	"testing"

	"github.com/luxfi/cryptosuite/allocator"
	"github.com/luxfi/cryptosuite/suite"
	"github.com/stretchr/testify/require"
)

func TestVeloV1_ResolvesEveryFamily(t *testing.T) {
	opts, err := suite.NewOptions(allocator.System, suite.VeloV1)
	require.NoError(t, err)
	defer opts.Dispose()

	hashCtx, err := opts.HashInit()
	require.NoError(t, err)
	hashCtx.Dispose()

	signCtx, err := opts.SignatureInit()
	require.NoError(t, err)
	signCtx.Dispose()

	prngCtx, err := opts.PRNGInit()
	require.NoError(t, err)
	prngCtx.Dispose()

	authCtx, err := opts.AuthKeyAgreementInit()
	require.NoError(t, err)
	authCtx.Dispose()

	cipherCtx, err := opts.CipherKeyAgreementInit()
	require.NoError(t, err)
	cipherCtx.Dispose()

	kdfCtx, err := opts.KeyDerivationInit()
	require.NoError(t, err)
	kdfCtx.Dispose()
}

func TestVeloV1_SignAndVerifyRoundTrip(t *testing.T) {
	opts, err := suite.NewOptions(allocator.System, suite.VeloV1)
	require.NoError(t, err)
	defer opts.Dispose()

	priv, err := opts.BufferForSignaturePrivateKey()
	require.NoError(t, err)
	pub, err := opts.BufferForSignaturePublicKey()
	require.NoError(t, err)

	signCtx, err := opts.SignatureInit()
	require.NoError(t, err)
	defer signCtx.Dispose()
	require.NoError(t, signCtx.Keypair(priv, pub))

	sig, err := opts.BufferForSignature()
	require.NoError(t, err)

	message := []byte("suite composition round trip")
	require.NoError(t, signCtx.Sign(sig, priv, message))
	require.NoError(t, signCtx.Verify(sig, pub, message))
}

func TestVeloV1_MACRoundTrip(t *testing.T) {
	opts, err := suite.NewOptions(allocator.System, suite.VeloV1)
	require.NoError(t, err)
	defer opts.Dispose()

	key := make([]byte, 64)
	for i := range key {
		key[i] = byte(i)
	}

	macCtx, err := opts.MACInit(key)
	require.NoError(t, err)
	require.NoError(t, macCtx.Digest([]byte("message body")))

	out, err := opts.BufferForMACAuthenticationCode(false)
	require.NoError(t, err)
	require.NoError(t, macCtx.Finalize(out))
	macCtx.Dispose()
}

func TestUnregisteredSuiteIsError(t *testing.T) {
	_, err := suite.NewOptions(allocator.System, suite.ID(0x7FFF_FFFF))
	require.Error(t, err)
}

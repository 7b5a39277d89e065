package suite

import (
	"github.com/luxfi/cryptosuite/blockcipher"
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/kdf"
	"github.com/luxfi/cryptosuite/keyagreement"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/prng"
	"github.com/luxfi/cryptosuite/registry"
	"github.com/luxfi/cryptosuite/signature"
	"github.com/luxfi/cryptosuite/streamcipher"
)

var registerVeloV1 registry.Once

// RegisterVeloV1 registers the VeloV1 suite, mirroring
// original_source/src/suite/vccrypt_suite_register_velo_v1.c's algorithm
// choices: SHA-512, HMAC-SHA-512 for both the long and short MAC, Ed25519,
// the OS PRNG source, X25519/SHA-512 for authentication key agreement,
// X25519/SHA-512-256 for cipher key agreement, cascaded 2X AES-256-CBC, and
// cascaded 2X AES-256-CTR. PBKDF2 is added here for key derivation since the
// original struct carries key_derivation_alg/key_derivation_hmac_alg fields
// that vccrypt_suite_register_velo_v1.c itself leaves unset — this suite
// binds PBKDF2-over-HMAC-SHA-512 so every field in the Descriptor has a
// concrete algorithm behind it.
func RegisterVeloV1() {
	registerVeloV1.Do(func() {
		hash.RegisterSHA2()
		mac.RegisterHMAC()
		signature.RegisterEd25519()
		prng.RegisterOperatingSystemSource()
		keyagreement.RegisterCurve25519()
		blockcipher.RegisterAES()
		streamcipher.RegisterAES()
		kdf.RegisterPBKDF2()

		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: registry.AlgorithmID(VeloV1),
			Descriptor: Descriptor{
				ID:                 VeloV1,
				HashAlgorithm:      hash.SHA512,
				SignAlgorithm:      signature.Ed25519,
				PRNGSource:         prng.SourceOperatingSystem,
				MACAlgorithm:       mac.HMACSHA512,
				MACShortAlgorithm:  mac.HMACSHA512,
				KeyAuthAlgorithm:   keyagreement.Curve25519SHA512,
				KeyCipherAlgorithm: keyagreement.Curve25519SHA512256,
				KDFAlgorithm:       kdf.PBKDF2,
				KDFHMACAlgorithm:   mac.HMACSHA512,
				BlockAlgorithm:     blockcipher.AES256CBC2X,
				StreamAlgorithm:    streamcipher.AES256CTR2X,
			},
		})
	})
}

func init() {
	RegisterVeloV1()
}

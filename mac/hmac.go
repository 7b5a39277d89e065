package mac

import (
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/registry"
)

var registerHMAC registry.Once

// RegisterHMAC registers the two concrete MAC algorithms this spec names:
// HMAC-SHA-512 and HMAC-SHA-512/256. Both ride the generic construction in
// mac.go; only the underlying hash algorithm differs.
func RegisterHMAC() {
	registerHMAC.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: HMACSHA512,
			Descriptor: Descriptor{
				Algorithm:     HMACSHA512,
				HashAlgorithm: hash.SHA512,
				KeySize:       64,
				MACSize:       64,
			},
		})
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: HMACSHA512_256,
			Descriptor: Descriptor{
				Algorithm:     HMACSHA512_256,
				HashAlgorithm: hash.SHA512_256,
				KeySize:       32,
				MACSize:       32,
			},
		})
	})
}

func init() {
	RegisterHMAC()
}

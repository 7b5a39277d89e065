package mock

import (
	"github.com/luxfi/cryptosuite/hash"
	"github.com/luxfi/cryptosuite/mac"
	"github.com/luxfi/cryptosuite/registry"
)

var registerMAC registry.Once

// RegisterMAC registers mac.MockAlgorithm as HMAC run over
// hash.MockAlgorithm: installing Hash hooks controls the mock MAC's
// behavior, matching original_source's approach of composing the mock hash
// into vccrypt_mac_register_SHA_2_512_HMAC's own plumbing
// (src/mock/mac/vccrypt_mac_register_short_mock.cpp registers a standalone
// mock instead, but this module's MAC family has no independent Engine seam
// of its own — it is always HMAC-over-a-hash — so composing onto the hash
// mock is the faithful equivalent here).
func RegisterMAC() {
	registerMAC.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: mac.InterfaceTag,
			Algorithm: mac.MockAlgorithm,
			Descriptor: mac.Descriptor{
				Algorithm:     mac.MockAlgorithm,
				HashAlgorithm: hash.MockAlgorithm,
				KeySize:       64,
				MACSize:       64,
			},
		})
	})
}

func init() { RegisterMAC() }

package mock

import (
	"github.com/luxfi/cryptosuite/prng"
	"github.com/luxfi/cryptosuite/registry"
)

// PRNGHooks holds the installable callback backing prng.MockSource.
type PRNGHooks struct {
	Read func(buf []byte) error
}

// PRNG is installed by tests before exercising code that selects
// prng.MockSource.
var PRNG = PRNGHooks{}

type mockPRNGSource struct{}

func (mockPRNGSource) Read(buf []byte) error {
	if PRNG.Read == nil {
		return notAdded("read")
	}
	return PRNG.Read(buf)
}

var registerPRNG registry.Once

// RegisterPRNG registers prng.MockSource.
func RegisterPRNG() {
	registerPRNG.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: prng.InterfaceTag,
			Algorithm: prng.MockSource,
			Descriptor: prng.Descriptor{
				Algorithm: prng.MockSource,
				Source:    mockPRNGSource{},
			},
		})
	})
}

func init() { RegisterPRNG() }

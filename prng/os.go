package prng

import (
	"crypto/rand"

	"github.com/luxfi/cryptosuite/internal/logging"
	"github.com/luxfi/cryptosuite/registry"
)

// osSource reads from the Go runtime's OS entropy source (getrandom(2) /
// /dev/urandom / CryptGenRandom, depending on platform), which is the
// external collaborator original_source's unix backend reaches for via
// /dev/urandom directly.
type osSource struct{}

func (osSource) Read(buf []byte) error {
	_, err := rand.Read(buf)
	if err != nil {
		logging.Default().Error("prng: OS entropy source read failed", "error", err)
	}
	return err
}

var registerOS registry.Once

// RegisterOperatingSystemSource registers SourceOperatingSystem.
func RegisterOperatingSystemSource() {
	registerOS.Do(func() {
		registry.MustRegisterUnique(registry.Entry{
			Interface: InterfaceTag,
			Algorithm: SourceOperatingSystem,
			Descriptor: Descriptor{
				Algorithm: SourceOperatingSystem,
				Source:    osSource{},
			},
		})
	})
}

func init() {
	RegisterOperatingSystemSource()
}

// Package registry is the process-wide abstract factory from spec §4.3: a
// set of registrations `(interfaceTag, implID) -> descriptor`, append-only
// within a run. It is adapted from this module's teacher's own precompile
// module registry (modules.RegisterModule / modules.GetPrecompileModule),
// keyed here by (interface, algorithm) instead of by EVM address.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/luxfi/cryptosuite/internal/logging"
)

// InterfaceTag distinguishes a family (hash, MAC, PRNG, …). Values are the
// wire-stable interface tags from spec §6.
type InterfaceTag uint32

// AlgorithmID distinguishes a concrete algorithm within a family. Values are
// the wire-stable algorithm selectors from spec §6.
type AlgorithmID uint32

// Entry is a registry entry: `{interface-tag, implementation-id, features,
// context-pointer}` from spec §3. Descriptor is the opaque per-family
// algorithm descriptor consumed by that family's options-init.
type Entry struct {
	Interface  InterfaceTag
	Algorithm  AlgorithmID
	Features   []string
	Descriptor any
}

type key struct {
	iface InterfaceTag
	alg   AlgorithmID
}

var (
	mu      sync.RWMutex
	entries = make(map[key]Entry)
	order   []key
)

// Register appends an entry to the process-wide registry. Calling Register
// twice for the same (interface, algorithm) pair overwrites the descriptor
// but is otherwise harmless — registrations are expected to come from
// idempotent, Once-guarded Register* functions, so in practice this path is
// only taken once per pair.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	k := key{e.Interface, e.Algorithm}
	if _, exists := entries[k]; !exists {
		order = append(order, k)
	}
	entries[k] = e
}

// Find looks up a registration, returning ok=false on miss. This is the only
// read path family options-init code may use; it must never be called
// before the relevant Register* function has run (spec §5 ordering).
func Find(iface InterfaceTag, alg AlgorithmID) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[key{iface, alg}]
	return e, ok
}

// All returns every registered entry, sorted by (interface, algorithm) for
// deterministic iteration, mirroring the teacher's
// insertSortedByAddress/RegisteredModules guarantee.
func All() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, 0, len(order))
	for _, k := range order {
		out = append(out, entries[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Interface != out[j].Interface {
			return out[i].Interface < out[j].Interface
		}
		return out[i].Algorithm < out[j].Algorithm
	})
	return out
}

// Once guards a Register* function so that its registration body runs
// exactly once, mirroring every concrete algorithm package's `func init()`
// registration-once pattern in the teacher repo (e.g. blake3's Module init,
// which panics on registration failure rather than leaving the registry
// half-populated).
type Once struct {
	once sync.Once
}

// Do runs fn exactly once across the lifetime of the process. Calls made
// after the first use of the registry are no-ops, matching spec §4.3's
// "calling register_* after first use is a no-op."
func (o *Once) Do(fn func()) {
	o.once.Do(fn)
}

// MustRegisterUnique registers e and panics if the (interface, algorithm)
// pair was already registered. Concrete
// algorithm packages call this from within a Once-guarded init so that a
// broken build (two packages claiming the same selector) fails loudly at
// program start, the same way the teacher's modules.RegisterModule does for
// duplicate precompile addresses.
func MustRegisterUnique(e Entry) {
	mu.Lock()
	if existing, ok := entries[key{e.Interface, e.Algorithm}]; ok {
		mu.Unlock()
		logging.Default().Error("registry: duplicate registration", "interface", e.Interface, "algorithm", e.Algorithm, "existing", existing)
		panic(fmt.Sprintf("registry: interface 0x%x algorithm 0x%x already registered as %v", e.Interface, e.Algorithm, existing))
	}
	mu.Unlock()
	Register(e)
}

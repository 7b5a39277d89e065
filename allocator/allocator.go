// Package allocator defines the allocator capability that every disposable
// construct in cryptosuite carries by reference, and the Disposable contract
// those constructs satisfy.
//
// Go's garbage collector makes the Velo library's raw allocate/release pair
// unnecessary for memory safety, but the spec's allocator indirection is kept
// so that a caller can swap in a locked/pinned allocator (mlock'd memory,
// a pool, …) without changing family code, and so that every construct has a
// single documented place that owns zeroization policy.
package allocator

// Allocator is the capability `{allocate(n), release(p)}` from spec §4.1.
// Allocate must return a zero-length-safe slice of exactly n bytes, or nil
// plus a non-nil error on exhaustion. Release must tolerate a nil slice.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Release(p []byte)
}

// Disposable is any object with a deterministic, idempotent-by-construction
// zeroizing cleanup action.
type Disposable interface {
	Dispose()
}

// System is the default Allocator, backed by the Go heap. Release zeroes the
// slice before letting it go, satisfying the "zero owned bytes" half of every
// disposal contract; the heap itself reclaims the backing array normally.
var System Allocator = systemAllocator{}

type systemAllocator struct{}

func (systemAllocator) Allocate(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func (systemAllocator) Release(p []byte) {
	Zero(p)
}

// Zero overwrites p with zero bytes. It is used on every disposal path that
// might hold secret material (keys, shared secrets, digests-in-progress).
//
// This is a plain byte-by-byte store, not a compiler-fence-guarded volatile
// write: Go has no portable "prevent dead-store elimination" primitive in
// the standard library, and none of the libraries this module already
// depends on (circl, golang.org/x/crypto, luxfi/log) export one either, so a
// manual loop is the best available approximation of the spec's
// "volatile-write-then-release" note in §9.
func Zero(p []byte) {
	for i := range p {
		p[i] = 0
	}
}

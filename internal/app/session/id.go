package session

import (
	mrand "math/rand"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ulidEntropy   = ulid.Monotonic(mrand.New(mrand.NewSource(time.Now().UnixNano())), 0)
	ulidEntropyMu sync.Mutex
)

// NewID returns a lexically sortable game id.
func NewID() string {
	ulidEntropyMu.Lock()
	defer ulidEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// ResolveSeed passes a non-zero seed through and replaces zero with a
// random seed in [1, limit).
func ResolveSeed(seed, limit uint64) uint64 {
	if seed != 0 {
		return seed
	}
	if limit < 2 {
		return 1
	}
	return 1 + rand.Uint64N(limit-1)
}

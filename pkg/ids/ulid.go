package ids

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/exp/rand"
)

var (
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))), 0)
	entropyMu sync.Mutex
)

// NewRunID returns a ULID stamped with t, used to tie together the
// log lines of a single run. IDs created within the same millisecond
// are strictly increasing.
func NewRunID(t time.Time) (ulid.ULID, error) {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return ulid.New(ulid.Timestamp(t), entropy)
}

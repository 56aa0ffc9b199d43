package ensembl

import "sync/atomic"

// InitialQuota is assumed until the service reports the real figure.
const InitialQuota = 10

// Quota is the number of requests the service still allows in the current
// window, as last reported by the service. It is safe for concurrent use.
// It is only ever overwritten by a response, never counted down locally.
type Quota struct {
	remaining atomic.Int64
}

// NewQuota creates a Quota starting at initial.
func NewQuota(initial int64) *Quota {
	q := &Quota{}
	q.remaining.Store(initial)
	return q
}

// Remaining returns the last reported number of requests remaining.
func (q *Quota) Remaining() int64 {
	return q.remaining.Load()
}

func (q *Quota) set(remaining int64) {
	q.remaining.Store(remaining)
}

// DefaultQuota is the process-wide quota shared by every processor that is
// not given its own.
var DefaultQuota = NewQuota(InitialQuota)

// RequestsRemaining returns the process-wide number of requests remaining.
func RequestsRemaining() int64 {
	return DefaultQuota.Remaining()
}

package logo

import (
	"context"
	"time"
)

// Source fetches logo bytes from one upstream provider. Implementations
// must bound every network call with their own timeout and return the
// attempted URL in the response even on error.
type Source interface {
	Name() string
	Fetch(ctx context.Context, req SourceRequest) (SourceResponse, error)
}

// Store persists fetch metadata for diagnostics and auditing.
type Store interface {
	RecordFetch(ctx context.Context, rec FetchRecord) error
	LatestFetch(ctx context.Context, company string) (FetchRecord, error)
}

// Sink writes validated logo bytes to durable storage and returns the
// destination path or URI.
type Sink interface {
	Save(ctx context.Context, company string, info ImageInfo, data []byte) (string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

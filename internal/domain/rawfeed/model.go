package rawfeed

import "time"

// Document is a verbatim upstream payload kept for replay and audit. One row
// exists per cache key; a later fetch for the same key replaces the payload.
type Document struct {
	CacheKey    string
	Payload     string
	LastUpdated time.Time
}

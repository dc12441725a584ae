package app

import "time"

// TickMsg triggers a frame rebuild.
type TickMsg time.Time

// EvictMsg triggers eviction of airships the feed stopped reporting.
type EvictMsg time.Time

// FeedErrorMsg reports feed errors.
type FeedErrorMsg struct {
	Err error
}

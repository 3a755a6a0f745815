package domain

import "time"

// SweepStats holds statistics about one backfill sweep.
type SweepStats struct {
	Cursor     int64
	Processed  int
	UserRows   int
	NextCursor int64
	Duration   time.Duration
}

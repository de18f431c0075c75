package models

import "time"

// MatchRunRecord is the persisted form of a completed MatchRun; the run
// itself is stored as one JSON payload since it is immutable and only ever
// read back whole.
type MatchRunRecord struct {
	RunID     string `gorm:"primaryKey"`
	Payload   []byte
	CreatedAt time.Time
}

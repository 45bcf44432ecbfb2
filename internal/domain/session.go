package domain

import "time"

// SessionRecord is a committed focus interval handed to persistence
type SessionRecord struct {
	Category  string
	Duration  int // Seconds, equal to the elapsed focus time at commit
	ID        string
	Timestamp int64 // Epoch milliseconds at commit
	UserID    string
}

// Time returns the commit timestamp as a time.Time
func (r SessionRecord) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

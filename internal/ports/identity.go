package ports

import "time"

// IdentityProvider supplies the user whose sessions are recorded
type IdentityProvider interface {
	// UserID returns the current user; ok is false when nobody is signed in
	UserID() (userID string, ok bool)
}

// Clock abstracts wall-clock time for commit timestamps
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock; ClockFunc(time.Now) is the wall clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// InstanceLocker guarantees a single active timer per user
type InstanceLocker interface {
	// Acquire takes the lock or fails with domain.ErrInstanceLocked
	Acquire(userID string) (release func() error, err error)
}

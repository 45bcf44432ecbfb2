//go:build !darwin && !linux && !windows

package sound

// playForEvent has no system sound on unsupported platforms
func playForEvent(eventType string) bool {
	return false
}

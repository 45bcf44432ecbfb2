package ports

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySoundForEvent plays a sound for a specific timer event type
	PlaySoundForEvent(eventType string) error
}

package session

// Speech rate bounds. 1.0 is normal speed.
const (
	MinSpeechRate     = 0.5
	MaxSpeechRate     = 2.0
	DefaultSpeechRate = 1.0
)

// Settings holds the user-tunable session behavior.
type Settings struct {
	// VoiceEnabled routes utterances to the speech sink when true.
	VoiceEnabled bool
	// SpeechRate is the playback rate for utterances, clamped to
	// [MinSpeechRate, MaxSpeechRate].
	SpeechRate float64
	// AutoAdvance moves to the next card automatically after an
	// answer is marked.
	AutoAdvance bool
}

// DefaultSettings returns the out-of-the-box behavior: voice on,
// normal rate, manual advancing.
func DefaultSettings() Settings {
	return Settings{
		VoiceEnabled: true,
		SpeechRate:   DefaultSpeechRate,
	}
}

// ClampRate forces a rate into the supported range.
func ClampRate(rate float64) float64 {
	if rate < MinSpeechRate {
		return MinSpeechRate
	}
	if rate > MaxSpeechRate {
		return MaxSpeechRate
	}
	return rate
}

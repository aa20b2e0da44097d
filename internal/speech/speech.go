// Package speech defines the outbound text-to-speech port. Concrete
// synthesis is an external collaborator; the session only needs to
// request utterances and observe when they start and finish.
package speech

// EventKind identifies an utterance lifecycle signal.
type EventKind int

const (
	// EventStarted fires when an utterance begins playing.
	EventStarted EventKind = iota
	// EventEnded fires when an utterance finishes or is cancelled.
	EventEnded
)

// Event is a lifecycle signal for one utterance.
type Event struct {
	Kind EventKind
	Text string
}

// Synthesizer accepts speak requests. The sink is a single shared
// resource: a new Speak supersedes any in-flight utterance, so at most
// one utterance is active at a time.
type Synthesizer interface {
	// Speak requests that text be spoken at the given rate (1.0 = normal).
	// Fire-and-forget; progress is reported through lifecycle events.
	Speak(text string, rate float64)

	// Stop cancels the in-flight utterance, if any.
	Stop()
}

// Null is a Synthesizer that discards all requests. Used when voice
// output is disabled; it emits no lifecycle events.
type Null struct{}

func (Null) Speak(string, float64) {}
func (Null) Stop()                 {}

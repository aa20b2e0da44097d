package speech

import "sync"

// Recorder is a Synthesizer for tests. It records requests and lets the
// test drive lifecycle events by hand.
type Recorder struct {
	mu      sync.Mutex
	notify  func(Event)
	current string

	Utterances []string
	Rates      []float64
	Stops      int
}

// NewRecorder creates a Recorder. notify may be nil.
func NewRecorder(notify func(Event)) *Recorder {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Recorder{notify: notify}
}

func (r *Recorder) Speak(text string, rate float64) {
	r.mu.Lock()
	r.Utterances = append(r.Utterances, text)
	r.Rates = append(r.Rates, rate)
	r.current = text
	r.mu.Unlock()
	r.notify(Event{Kind: EventStarted, Text: text})
}

func (r *Recorder) Stop() {
	r.mu.Lock()
	r.Stops++
	r.current = ""
	r.mu.Unlock()
}

// FinishCurrent emits the ended event for the in-flight utterance.
func (r *Recorder) FinishCurrent() {
	r.mu.Lock()
	text := r.current
	r.current = ""
	r.mu.Unlock()
	if text != "" {
		r.notify(Event{Kind: EventEnded, Text: text})
	}
}

// Last returns the most recent utterance, or "" if none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Utterances) == 0 {
		return ""
	}
	return r.Utterances[len(r.Utterances)-1]
}

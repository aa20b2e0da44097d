package session

import "time"

// Spoken prompts for session milestones.
const (
	PromptGenerated = "Flashcards generated successfully! Let's start studying."
	PromptCorrect   = "Correct!"
	PromptIncorrect = "Let's review this one again."
	PromptComplete  = "Study session complete! Great job!"
	PromptCleared   = "All data cleared."
)

// Timing for deferred actions.
const (
	// SpeakQuestionDelay is the pause before reading a card's question
	// after navigating to it.
	SpeakQuestionDelay = 500 * time.Millisecond
	// PostMarkAdvanceDelay is the auto-advance delay after marking an
	// outcome.
	PostMarkAdvanceDelay = 1500 * time.Millisecond
	// PostSpeechAdvanceDelay is the auto-advance delay after a spoken
	// answer finishes.
	PostSpeechAdvanceDelay = 1000 * time.Millisecond
)

// DeferredKind identifies what a deferred action does when it fires.
type DeferredKind int

const (
	// DeferSpeakQuestion reads the current card's question aloud.
	DeferSpeakQuestion DeferredKind = iota
	// DeferAdvance moves to the next card.
	DeferAdvance
)

// Deferred is a timer request the caller arms on the machine's behalf.
// Token pins it to the machine state it was issued under; any later
// transition invalidates the token, so a stale timer firing is a no-op.
type Deferred struct {
	Kind  DeferredKind
	Delay time.Duration
	Token uint64
}

// Effects describes the side effects a transition requests. The machine
// mutates only its own state; the caller performs these against the
// speech sink and its timer facility.
type Effects struct {
	// Utterances to speak, in order, at the current speech rate.
	Utterances []string
	// StopSpeech cancels the in-flight utterance.
	StopSpeech bool
	// Completed signals that the end of the card set was reached.
	Completed bool
	// Deferred actions to arm. Deliver each back via Machine.Fire
	// after its delay.
	Deferred []Deferred
}

func speak(texts ...string) Effects {
	return Effects{Utterances: texts}
}

// Package session implements the study session state machine: which
// card is current, whether its answer is revealed, and how answer
// outcomes feed the scheduling policy. Transitions are synchronous and
// return Effects; the caller performs speech and timer side effects.
package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ahmadkhatib02/echolearn/internal/card"
	"github.com/ahmadkhatib02/echolearn/internal/command"
	"github.com/ahmadkhatib02/echolearn/internal/store"
)

// View identifies the top-level screen the session is on.
type View int

const (
	ViewInput View = iota
	ViewStudy
	ViewSettings
)

func (v View) String() string {
	switch v {
	case ViewInput:
		return "input"
	case ViewStudy:
		return "study"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// CardStore persists the session's card set and aggregate stats.
// Implemented by store.SessionRepo.
type CardStore interface {
	SaveCards(ctx context.Context, cards card.Set) error
	LoadCards(ctx context.Context) (card.Set, bool, error)
	SaveStats(ctx context.Context, stats card.Stats) error
	LoadStats(ctx context.Context) (card.Stats, bool, error)
	Clear(ctx context.Context) error
}

// ReviewLog records review outcomes for the history log. Optional.
type ReviewLog interface {
	AppendReview(ctx context.Context, data store.ReviewEventData) error
}

// Machine is the session state machine. It is not safe for concurrent
// use; all transitions run on the caller's single event loop.
//
// Persistence failures are logged and swallowed: the in-memory state
// stays authoritative for the rest of the session.
type Machine struct {
	repo   CardStore
	events ReviewLog

	view     View
	cards    card.Set
	index    int
	revealed bool
	stats    card.Stats
	settings Settings

	// seq invalidates deferred timers: every mutating transition
	// bumps it, so a timer armed before the transition is stale.
	seq uint64

	now  func() time.Time
	logf func(format string, args ...any)
}

// New creates a machine in the initial state: input view, empty card
// set, zeroed stats. events may be nil to skip review logging.
func New(repo CardStore, events ReviewLog) *Machine {
	return &Machine{
		repo:     repo,
		events:   events,
		view:     ViewInput,
		settings: DefaultSettings(),
		now:      time.Now,
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// Load restores the persisted card set and stats. Missing records
// leave the corresponding state empty; failures are logged and the
// machine starts fresh.
func (m *Machine) Load(ctx context.Context) {
	cards, ok, err := m.repo.LoadCards(ctx)
	if err != nil {
		m.logf("load cards: %v", err)
	} else if ok {
		m.cards = cards
	}

	stats, ok, err := m.repo.LoadStats(ctx)
	if err != nil {
		m.logf("load stats: %v", err)
	} else if ok {
		m.stats = stats
	}
}

// Start replaces the card set wholesale and begins studying from the
// first card. Prior scheduling progress for the old set is discarded.
func (m *Machine) Start(ctx context.Context, cards []card.Card) Effects {
	m.cards = card.Set(cards)
	m.index = 0
	m.revealed = false
	m.view = ViewStudy
	m.seq++
	m.persistCards(ctx)
	return speak(PromptGenerated)
}

// SwitchView moves between the top-level views. Entering the study
// view with cards available queues the current question to be read.
func (m *Machine) SwitchView(v View) Effects {
	if v == m.view {
		return Effects{}
	}
	m.view = v
	m.seq++
	if v == ViewStudy && len(m.cards) > 0 {
		return m.deferOne(DeferSpeakQuestion, SpeakQuestionDelay)
	}
	return Effects{}
}

// Reveal shows the current card's answer and speaks it. No-op if the
// answer is already revealed or the set is empty.
func (m *Machine) Reveal() Effects {
	if len(m.cards) == 0 || m.revealed {
		return Effects{}
	}
	m.revealed = true
	m.seq++
	return speak(m.cards[m.index].Answer)
}

// Next moves to the following card. At the last card the index stays
// put and a completion signal is emitted instead; this is not an error
// and may happen repeatedly.
func (m *Machine) Next() Effects {
	if len(m.cards) == 0 {
		return Effects{}
	}
	if m.index >= len(m.cards)-1 {
		fx := speak(PromptComplete)
		fx.Completed = true
		return fx
	}
	m.index++
	m.revealed = false
	m.seq++
	return m.deferOne(DeferSpeakQuestion, SpeakQuestionDelay)
}

// Previous moves back one card. No-op at the first card.
func (m *Machine) Previous() Effects {
	if len(m.cards) == 0 || m.index == 0 {
		return Effects{}
	}
	m.index--
	m.revealed = false
	m.seq++
	return m.deferOne(DeferSpeakQuestion, SpeakQuestionDelay)
}

// Repeat hides the answer again and re-reads the question.
func (m *Machine) Repeat() Effects {
	if len(m.cards) == 0 {
		return Effects{}
	}
	m.revealed = false
	m.seq++
	return speak(m.cards[m.index].Question)
}

// Mark records an answer outcome for the current card: the scheduling
// policy updates the card, the aggregate stats are bumped, and both
// records are persisted before any auto-advance timer is armed.
// Requires the answer to be revealed; otherwise a no-op.
func (m *Machine) Mark(ctx context.Context, correct bool) Effects {
	if len(m.cards) == 0 || !m.revealed {
		return Effects{}
	}

	now := m.now()
	updated := card.ApplyOutcome(m.cards[m.index], correct, now)
	m.cards[m.index] = updated
	m.stats.Record(correct)
	m.seq++

	m.persistCards(ctx)
	m.persistStats(ctx)
	m.recordReview(ctx, updated, correct, now)

	prompt := PromptCorrect
	if !correct {
		prompt = PromptIncorrect
	}
	fx := speak(prompt)
	if m.settings.AutoAdvance {
		fx.Deferred = append(fx.Deferred, Deferred{
			Kind:  DeferAdvance,
			Delay: PostMarkAdvanceDelay,
			Token: m.seq,
		})
	}
	return fx
}

// Reset empties the card set and stats unconditionally. Confirmation
// is the caller's concern.
func (m *Machine) Reset(ctx context.Context) Effects {
	m.cards = nil
	m.index = 0
	m.revealed = false
	m.stats = card.Stats{}
	m.seq++
	if err := m.repo.Clear(ctx); err != nil {
		m.logf("clear session data: %v", err)
	}
	return speak(PromptCleared)
}

// SpeakQuestion requests the current question be read aloud.
func (m *Machine) SpeakQuestion() Effects {
	if len(m.cards) == 0 {
		return Effects{}
	}
	return speak(m.cards[m.index].Question)
}

// SpeakAnswer requests the current answer be read aloud.
func (m *Machine) SpeakAnswer() Effects {
	if len(m.cards) == 0 {
		return Effects{}
	}
	return speak(m.cards[m.index].Answer)
}

// StopSpeaking cancels the in-flight utterance.
func (m *Machine) StopSpeaking() Effects {
	return Effects{StopSpeech: true}
}

// SpeechEnded is delivered when an utterance finishes. With
// auto-advance on and the answer revealed, it queues the move to the
// next card.
func (m *Machine) SpeechEnded() Effects {
	if m.view == ViewStudy && m.settings.AutoAdvance && m.revealed && len(m.cards) > 0 {
		return m.deferOne(DeferAdvance, PostSpeechAdvanceDelay)
	}
	return Effects{}
}

// Fire delivers a deferred action whose timer elapsed. Stale tokens
// (any transition happened since the timer was armed) are dropped.
func (m *Machine) Fire(ctx context.Context, d Deferred) Effects {
	if d.Token != m.seq {
		return Effects{}
	}
	switch d.Kind {
	case DeferSpeakQuestion:
		return m.SpeakQuestion()
	case DeferAdvance:
		return m.Next()
	default:
		return Effects{}
	}
}

// Apply routes a dispatched command to its transition.
func (m *Machine) Apply(ctx context.Context, action command.Action) Effects {
	switch action {
	case command.ActionNext:
		return m.Next()
	case command.ActionRepeat:
		return m.Repeat()
	case command.ActionReveal:
		return m.Reveal()
	case command.ActionMarkCorrect:
		return m.Mark(ctx, true)
	case command.ActionMarkIncorrect:
		return m.Mark(ctx, false)
	case command.ActionPrevious:
		return m.Previous()
	case command.ActionStopSpeaking:
		return m.StopSpeaking()
	default:
		return Effects{}
	}
}

// CurrentView returns the active top-level view.
func (m *Machine) CurrentView() View { return m.view }

// Cards returns the study set. Callers must not mutate it.
func (m *Machine) Cards() card.Set { return m.cards }

// Index returns the current card position.
func (m *Machine) Index() int { return m.index }

// Current returns the card being studied, if any.
func (m *Machine) Current() (card.Card, bool) {
	if len(m.cards) == 0 {
		return card.Card{}, false
	}
	return m.cards[m.index], true
}

// Revealed reports whether the current card's answer is shown.
func (m *Machine) Revealed() bool { return m.revealed }

// Stats returns the aggregate answer counters.
func (m *Machine) Stats() card.Stats { return m.stats }

// Settings returns the current session settings.
func (m *Machine) Settings() Settings { return m.settings }

// SetVoiceEnabled toggles speech output.
func (m *Machine) SetVoiceEnabled(on bool) { m.settings.VoiceEnabled = on }

// SetSpeechRate sets the utterance rate, clamped to the valid range.
func (m *Machine) SetSpeechRate(rate float64) { m.settings.SpeechRate = ClampRate(rate) }

// SetAutoAdvance toggles automatic advancing after marked answers.
func (m *Machine) SetAutoAdvance(on bool) { m.settings.AutoAdvance = on }

func (m *Machine) deferOne(kind DeferredKind, delay time.Duration) Effects {
	return Effects{Deferred: []Deferred{{Kind: kind, Delay: delay, Token: m.seq}}}
}

func (m *Machine) persistCards(ctx context.Context) {
	if err := m.repo.SaveCards(ctx, m.cards); err != nil {
		m.logf("save cards: %v", err)
	}
}

func (m *Machine) persistStats(ctx context.Context) {
	if err := m.repo.SaveStats(ctx, m.stats); err != nil {
		m.logf("save stats: %v", err)
	}
}

func (m *Machine) recordReview(ctx context.Context, c card.Card, correct bool, now time.Time) {
	if m.events == nil {
		return
	}
	data := store.ReviewEventData{
		CardID:       c.ID,
		Correct:      correct,
		Difficulty:   c.Difficulty,
		IntervalDays: int(c.NextReview.Sub(now) / (24 * time.Hour)),
	}
	if err := m.events.AppendReview(ctx, data); err != nil {
		m.logf("record review event: %v", err)
	}
}

package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ahmadkhatib02/echolearn/internal/card"
	"github.com/ahmadkhatib02/echolearn/internal/router"
	"github.com/ahmadkhatib02/echolearn/internal/screen"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/speech"
	"github.com/ahmadkhatib02/echolearn/internal/store"
)

type nopStore struct{}

func (nopStore) SaveCards(context.Context, card.Set) error { return nil }
func (nopStore) LoadCards(context.Context) (card.Set, bool, error) {
	return nil, false, nil
}
func (nopStore) SaveStats(context.Context, card.Stats) error { return nil }
func (nopStore) LoadStats(context.Context) (card.Stats, bool, error) {
	return card.Stats{}, false, nil
}
func (nopStore) Clear(context.Context) error { return nil }

type nopLog struct{}

func (nopLog) AppendReview(context.Context, store.ReviewEventData) error { return nil }

// stubScreen stands in for the real screens so tests don't need a
// running generator or terminal.
type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *stubScreen) View(width, height int) string { return s.title }

func (s *stubScreen) Title() string { return s.title }

func newTestModel(t *testing.T) (AppModel, *session.Machine, *speech.Recorder) {
	t.Helper()
	machine := session.New(nopStore{}, nopLog{})
	rec := speech.NewRecorder(nil)
	screens := map[session.View]screen.Screen{
		session.ViewInput:    &stubScreen{title: "Generate"},
		session.ViewStudy:    &stubScreen{title: "Study"},
		session.ViewSettings: &stubScreen{title: "Settings"},
	}
	m := AppModel{
		deps:    &deps{machine: machine, synth: rec},
		router:  router.New(screens[session.ViewInput]),
		screens: screens,
	}
	return m, machine, rec
}

func testCards(n int) []card.Card {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, card.New("question", "answer", now))
	}
	return cards
}

func TestPerformSpeaksUtterances(t *testing.T) {
	m, machine, rec := newTestModel(t)

	fx := machine.Start(context.Background(), testCards(2))
	m.perform(fx)

	if rec.Last() != session.PromptGenerated {
		t.Errorf("Last() = %q, want %q", rec.Last(), session.PromptGenerated)
	}
}

func TestPerformSilentWhenVoiceDisabled(t *testing.T) {
	m, machine, rec := newTestModel(t)
	machine.SetVoiceEnabled(false)

	fx := machine.Start(context.Background(), testCards(1))
	m.perform(fx)

	if len(rec.Utterances) != 0 {
		t.Errorf("Utterances = %v, want none", rec.Utterances)
	}
}

func TestPerformStopsSpeech(t *testing.T) {
	m, _, rec := newTestModel(t)

	m.perform(session.Effects{StopSpeech: true})

	if rec.Stops != 1 {
		t.Errorf("Stops = %d, want 1", rec.Stops)
	}
}

func TestDeferredTimerSpeaksQuestion(t *testing.T) {
	m, machine, rec := newTestModel(t)

	machine.Start(context.Background(), testCards(1))
	machine.SwitchView(session.ViewInput)
	fx := machine.SwitchView(session.ViewStudy)
	if len(fx.Deferred) != 1 {
		t.Fatalf("Deferred = %v, want one timer", fx.Deferred)
	}

	updated, _ := m.Update(deferredMsg{d: fx.Deferred[0]})
	m = updated.(AppModel)

	if rec.Last() != "question" {
		t.Errorf("Last() = %q, want the card question", rec.Last())
	}
}

func TestSpeechEventsTrackSpeakingState(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(speech.Event{Kind: speech.EventStarted, Text: "hi"})
	m = updated.(AppModel)
	if !m.speaking {
		t.Error("speaking = false after start event")
	}
	if m.headerStatus() == "" {
		t.Error("headerStatus() empty while speaking")
	}

	updated, _ = m.Update(speech.Event{Kind: speech.EventEnded, Text: "hi"})
	m = updated.(AppModel)
	if m.speaking {
		t.Error("speaking = true after ended event")
	}
}

func TestSyncScreenFollowsMachineView(t *testing.T) {
	m, machine, _ := newTestModel(t)

	machine.SwitchView(session.ViewSettings)
	m.syncScreen()

	if got := m.router.Active().Title(); got != "Settings" {
		t.Errorf("active screen = %q, want Settings", got)
	}
}

func TestNextViewCycles(t *testing.T) {
	order := []session.View{session.ViewInput, session.ViewStudy, session.ViewSettings, session.ViewInput}
	for i := 0; i < len(order)-1; i++ {
		if got := nextView(order[i]); got != order[i+1] {
			t.Errorf("nextView(%v) = %v, want %v", order[i], got, order[i+1])
		}
	}
}

// Package app wires the session machine, screens, and speech sink into
// the root Bubble Tea program. All session effects funnel through here:
// screens emit session.Effects messages, the app speaks the utterances
// and arms the deferred timers.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahmadkhatib02/echolearn/internal/cardgen"
	"github.com/ahmadkhatib02/echolearn/internal/router"
	"github.com/ahmadkhatib02/echolearn/internal/screen"
	"github.com/ahmadkhatib02/echolearn/internal/screens/input"
	"github.com/ahmadkhatib02/echolearn/internal/screens/settings"
	"github.com/ahmadkhatib02/echolearn/internal/screens/study"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/speech"
	"github.com/ahmadkhatib02/echolearn/internal/ui/layout"
)

// Options carries the dependencies the app is built from.
type Options struct {
	Machine   *session.Machine
	Generator cardgen.Generator

	// NewSynth builds the speech sink once the program exists, so
	// lifecycle events can be delivered into the event loop. When nil
	// or failing, speech output is discarded.
	NewSynth func(notify func(speech.Event)) (speech.Synthesizer, error)
}

// deferredMsg delivers an elapsed session timer back to the machine.
type deferredMsg struct {
	d session.Deferred
}

// deps is shared mutable wiring behind the value-typed model.
type deps struct {
	machine *session.Machine
	synth   speech.Synthesizer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    *deps
	router  *router.Router
	screens map[session.View]screen.Screen

	width    int
	height   int
	speaking bool
}

func newAppModel(opts Options, d *deps) AppModel {
	screens := map[session.View]screen.Screen{
		session.ViewInput:    input.New(opts.Machine, opts.Generator),
		session.ViewStudy:    study.New(opts.Machine),
		session.ViewSettings: settings.New(opts.Machine),
	}
	return AppModel{
		deps:    d,
		router:  router.New(screens[session.ViewInput]),
		screens: screens,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case session.Effects:
		return m, tea.Batch(m.perform(msg), m.syncScreen())

	case deferredMsg:
		fx := m.deps.machine.Fire(context.Background(), msg.d)
		return m, m.perform(fx)

	case speech.Event:
		switch msg.Kind {
		case speech.EventStarted:
			m.speaking = true
			return m, nil
		case speech.EventEnded:
			m.speaking = false
			return m, m.perform(m.deps.machine.SpeechEnded())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			fx := m.deps.machine.SwitchView(nextView(m.deps.machine.CurrentView()))
			return m, tea.Batch(m.perform(fx), m.syncScreen())
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.syncScreen())
}

// perform speaks a transition's utterances and arms its timers.
func (m AppModel) perform(fx session.Effects) tea.Cmd {
	if fx.StopSpeech {
		m.deps.synth.Stop()
	}

	set := m.deps.machine.Settings()
	if set.VoiceEnabled {
		for _, u := range fx.Utterances {
			m.deps.synth.Speak(u, set.SpeechRate)
		}
	}

	cmds := make([]tea.Cmd, 0, len(fx.Deferred))
	for _, d := range fx.Deferred {
		cmds = append(cmds, tea.Tick(d.Delay, func(time.Time) tea.Msg {
			return deferredMsg{d: d}
		}))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncScreen swaps the active screen to match the machine's view. The
// machine is the single source of truth for which view is showing.
func (m AppModel) syncScreen() tea.Cmd {
	want := m.screens[m.deps.machine.CurrentView()]
	if m.router.Active() == want {
		return nil
	}
	return m.router.Replace(want)
}

func nextView(v session.View) session.View {
	switch v {
	case session.ViewInput:
		return session.ViewStudy
	case session.ViewStudy:
		return session.ViewSettings
	default:
		return session.ViewInput
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStatus(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch view"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) headerStatus() string {
	if m.speaking {
		return "♪ Speaking..."
	}
	if cards := m.deps.machine.Cards(); len(cards) > 0 {
		return fmt.Sprintf("%d due", cards.DueCount(time.Now()))
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	d := &deps{
		machine: opts.Machine,
		synth:   speech.Null{},
	}

	p := tea.NewProgram(newAppModel(opts, d))

	if opts.NewSynth != nil {
		synth, err := opts.NewSynth(func(ev speech.Event) { p.Send(ev) })
		if err != nil {
			fmt.Fprintln(os.Stderr, "speech synthesis unavailable:", err)
		} else {
			d.synth = synth
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

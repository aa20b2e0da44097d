// Package study implements the study view: one flashcard at a time,
// driven by keys or typed voice-style commands.
package study

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahmadkhatib02/echolearn/internal/command"
	"github.com/ahmadkhatib02/echolearn/internal/screen"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/ui/components"
	"github.com/ahmadkhatib02/echolearn/internal/ui/layout"
	"github.com/ahmadkhatib02/echolearn/internal/ui/theme"
)

// Screen implements screen.Screen for the study view.
type Screen struct {
	machine *session.Machine
	cmdBar  components.TextInput
	cmdMode bool

	// completeFlash shows the end-of-session banner until the next
	// navigation.
	completeFlash bool
	lastCommand   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the study view over the shared session machine.
func New(machine *session.Machine) *Screen {
	return &Screen{
		machine: machine,
		cmdBar:  components.NewTextInput(`Say something like "show answer", "correct", "next"...`, 80),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Study"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.cmdMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Run command"},
			{Key: "Esc", Description: "Close"},
		}
	}
	if _, ok := s.machine.Current(); !ok {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch view"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if s.machine.Revealed() {
		return []layout.KeyHint{
			{Key: "C", Description: "Correct"},
			{Key: "X", Description: "Incorrect"},
			{Key: "N/P", Description: "Next/Prev"},
			{Key: "/", Description: "Command"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Show answer"},
		{Key: "N/P", Description: "Next/Prev"},
		{Key: "R", Description: "Repeat"},
		{Key: "/", Description: "Command"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.cmdMode {
			var cmd tea.Cmd
			s.cmdBar, cmd = s.cmdBar.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.cmdMode {
		return s.handleCommandKey(key)
	}
	return s.handleKey(key)
}

func (s *Screen) handleKey(key tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key.String() {
	case "/":
		s.cmdMode = true
		s.cmdBar.Reset()
		return s, s.cmdBar.Focus()
	case " ", "enter":
		return s.run(s.machine.Reveal())
	case "n", "right":
		return s.run(s.machine.Next())
	case "p", "left":
		return s.run(s.machine.Previous())
	case "r":
		return s.run(s.machine.Repeat())
	case "c":
		return s.run(s.machine.Mark(context.Background(), true))
	case "x":
		return s.run(s.machine.Mark(context.Background(), false))
	case "q":
		return s.run(s.machine.SpeakQuestion())
	case "w":
		return s.run(s.machine.SpeakAnswer())
	case "s":
		return s.run(s.machine.StopSpeaking())
	}
	return s, nil
}

func (s *Screen) handleCommandKey(key tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key.String() {
	case "esc":
		s.cmdMode = false
		s.cmdBar.Blur()
		return s, nil
	case "enter":
		raw := s.cmdBar.Value()
		s.cmdBar.Reset()
		s.cmdMode = false
		s.cmdBar.Blur()

		action := command.Dispatch(raw)
		if action == command.ActionNone {
			s.lastCommand = fmt.Sprintf("%q (not recognized)", strings.TrimSpace(raw))
			return s, nil
		}
		s.lastCommand = fmt.Sprintf("%q -> %s", strings.TrimSpace(raw), action)
		return s.run(s.machine.Apply(context.Background(), action))
	}

	var cmd tea.Cmd
	s.cmdBar, cmd = s.cmdBar.Update(key)
	return s, cmd
}

// run forwards a transition's effects to the app loop, which performs
// speech and arms timers.
func (s *Screen) run(fx session.Effects) (screen.Screen, tea.Cmd) {
	if fx.Completed {
		s.completeFlash = true
	} else if len(fx.Deferred) > 0 || s.machine.Index() == 0 {
		s.completeFlash = false
	}
	return s, func() tea.Msg { return fx }
}

func (s *Screen) View(width, height int) string {
	cur, ok := s.machine.Current()
	if !ok {
		return s.renderEmpty(width)
	}

	cards := s.machine.Cards()
	idx := s.machine.Index()

	var b strings.Builder
	b.WriteString("\n")

	// Progress
	label := fmt.Sprintf("Card %d of %d", idx+1, len(cards))
	percent := float64(idx+1) / float64(len(cards))
	bar := components.NewProgressBar(label, percent, true, width-8)
	b.WriteString(lipgloss.NewStyle().Padding(0, 4).Render(bar.View()))
	b.WriteString("\n\n")

	// Question card
	cardWidth := width - 12
	if cardWidth < 24 {
		cardWidth = 24
	}
	question := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(cur.Question)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n")

	if s.machine.Revealed() {
		answer := theme.AnswerBox.Width(cardWidth).Align(lipgloss.Center).Render(cur.Answer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
		b.WriteString("\n")
	} else {
		hint := theme.Hint.Render("Press Space to show the answer")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n")
	}

	if s.completeFlash {
		done := theme.Correct.Render(session.PromptComplete)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, done))
		b.WriteString("\n")
	}

	// Stats line
	stats := s.machine.Stats()
	statsLine := fmt.Sprintf("Correct %d   Incorrect %d   Total %d",
		stats.Correct, stats.Incorrect, stats.Total)
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)))
	b.WriteString("\n")

	if s.lastCommand != "" && !s.cmdMode {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("last command: "+s.lastCommand)))
		b.WriteString("\n")
	}

	if s.cmdMode {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Padding(0, 4).Render("> " + s.cmdBar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("No flashcards available. Generate some first!")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Tab to go to the Create view")))
	return b.String()
}

// Package input implements the create view: paste study material,
// generate flashcards from it.
package input

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahmadkhatib02/echolearn/internal/card"
	"github.com/ahmadkhatib02/echolearn/internal/cardgen"
	"github.com/ahmadkhatib02/echolearn/internal/screen"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/ui/components"
	"github.com/ahmadkhatib02/echolearn/internal/ui/layout"
	"github.com/ahmadkhatib02/echolearn/internal/ui/theme"
)

// generatedMsg is sent when flashcard generation finishes.
type generatedMsg struct {
	Cards []card.Card
	Err   error
}

// Screen implements screen.Screen for the create view.
type Screen struct {
	machine    *session.Machine
	generator  cardgen.Generator
	text       components.TextArea
	generating bool
	statusMsg  string
	statusErr  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the create view over the shared session machine.
func New(machine *session.Machine, generator cardgen.Generator) *Screen {
	return &Screen{
		machine:   machine,
		generator: generator,
		text: components.NewTextArea(
			"Paste an article, notes, or any text you want to study...",
		),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.text.Init()
}

func (s *Screen) Title() string {
	return "Create"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Tab", Description: "Switch view"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return s.handleGenerated(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+g" {
			return s.submit()
		}
	}

	if s.generating {
		return s, nil
	}

	var cmd tea.Cmd
	s.text, cmd = s.text.Update(msg)
	return s, cmd
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}
	if strings.TrimSpace(s.text.Value()) == "" {
		s.setStatus("Please provide valid text to turn into flashcards.", true)
		return s, nil
	}
	if s.generator == nil {
		s.setStatus("No LLM provider configured. Set GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY.", true)
		return s, nil
	}

	s.generating = true
	s.statusMsg = ""
	text := s.text.Value()
	gen := s.generator
	return s, func() tea.Msg {
		cards, err := gen.Generate(context.Background(), text)
		return generatedMsg{Cards: cards, Err: err}
	}
}

func (s *Screen) handleGenerated(msg generatedMsg) (screen.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		var genErr *cardgen.GenerationError
		if errors.As(msg.Err, &genErr) {
			s.setStatus(genErr.UserMessage, true)
		} else {
			s.setStatus(msg.Err.Error(), true)
		}
		return s, nil
	}

	s.text.Reset()
	fx := s.machine.Start(context.Background(), msg.Cards)
	return s, func() tea.Msg { return fx }
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.statusMsg = msg
	s.statusErr = isErr
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("EchoLearn"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Voice-Interactive Learning Companion"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Privacy-first, no login required"))
	b.WriteString("\n\n")

	areaWidth := width - 8
	if areaWidth < 20 {
		areaWidth = 20
	}
	areaHeight := height - 12
	if areaHeight < 4 {
		areaHeight = 4
	}
	s.text.SetSize(areaWidth, areaHeight)

	b.WriteString(lipgloss.NewStyle().Padding(0, 4).Render(s.text.View()))
	b.WriteString("\n\n")

	count := len(s.text.Value())
	info := fmt.Sprintf("%d characters, up to %d flashcards", count, cardgen.MaxCards)
	b.WriteString(lipgloss.NewStyle().Padding(0, 4).Foreground(theme.TextDim).Render(info))
	b.WriteString("\n")

	switch {
	case s.generating:
		b.WriteString(lipgloss.NewStyle().Padding(0, 4).Foreground(theme.Accent).Render("Generating flashcards..."))
		b.WriteString("\n")
	case s.statusMsg != "":
		style := lipgloss.NewStyle().Padding(0, 4).Foreground(theme.Success)
		if s.statusErr {
			style = style.Foreground(theme.Error)
		}
		b.WriteString(style.Render(s.statusMsg))
		b.WriteString("\n")
	}

	if n := len(s.machine.Cards()); n > 0 {
		resume := fmt.Sprintf("Previous session available: %d flashcards ready to review. Press Tab to resume studying.", n)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Padding(0, 4).Foreground(theme.Success).Render(resume))
	}

	return b.String()
}

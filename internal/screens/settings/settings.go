// Package settings implements the settings view: voice options,
// study statistics, and data management.
package settings

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ahmadkhatib02/echolearn/internal/export"
	"github.com/ahmadkhatib02/echolearn/internal/screen"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/ui/layout"
	"github.com/ahmadkhatib02/echolearn/internal/ui/theme"
)

const (
	rowVoice = iota
	rowRate
	rowAutoAdvance
	rowExport
	rowClear
	rowCount
)

const rateStep = 0.1

// Screen implements screen.Screen for the settings view.
type Screen struct {
	machine  *session.Machine
	selected int

	confirmClear bool
	statusMsg    string
	statusErr    bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the settings view over the shared session machine.
func New(machine *session.Machine) *Screen {
	return &Screen{machine: machine}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Settings"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear everything"},
			{Key: "N", Description: "Keep data"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle/Run"},
		{Key: "←→", Description: "Adjust rate"},
		{Key: "Tab", Description: "Switch view"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmClear {
		switch key.String() {
		case "y", "Y":
			s.confirmClear = false
			fx := s.machine.Reset(context.Background())
			s.setStatus("All data cleared.", false)
			return s, func() tea.Msg { return fx }
		case "n", "N", "esc":
			s.confirmClear = false
			return s, nil
		}
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "left", "h":
		if s.selected == rowRate {
			s.machine.SetSpeechRate(s.machine.Settings().SpeechRate - rateStep)
		}
	case "right", "l":
		if s.selected == rowRate {
			s.machine.SetSpeechRate(s.machine.Settings().SpeechRate + rateStep)
		}
	case "enter", " ":
		return s.activate()
	}
	return s, nil
}

func (s *Screen) activate() (screen.Screen, tea.Cmd) {
	set := s.machine.Settings()
	switch s.selected {
	case rowVoice:
		s.machine.SetVoiceEnabled(!set.VoiceEnabled)
	case rowAutoAdvance:
		s.machine.SetAutoAdvance(!set.AutoAdvance)
	case rowExport:
		s.exportData()
	case rowClear:
		s.confirmClear = true
	}
	return s, nil
}

func (s *Screen) exportData() {
	now := time.Now()
	data, err := export.Encode(s.machine.Cards(), s.machine.Stats(), now)
	if err != nil {
		s.setStatus("Export failed: "+err.Error(), true)
		return
	}
	name := export.Filename(now)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		s.setStatus("Export failed: "+err.Error(), true)
		return
	}
	s.setStatus("Exported to "+name, false)
}

func (s *Screen) setStatus(msg string, isErr bool) {
	s.statusMsg = msg
	s.statusErr = isErr
}

func (s *Screen) View(width, height int) string {
	set := s.machine.Settings()
	stats := s.machine.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Voice Enabled", onOff(set.VoiceEnabled)},
		{"Speech Rate", fmt.Sprintf("%.1fx", set.SpeechRate)},
		{"Auto-advance after answer", onOff(set.AutoAdvance)},
		{"Export Data", ""},
		{"Clear All Data", ""},
	}

	pad := lipgloss.NewStyle().Padding(0, 6)
	for i, row := range rows {
		line := row.label
		if row.value != "" {
			line = fmt.Sprintf("%-28s %s", row.label, row.value)
		}
		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(pad.Render(style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pad.Render(theme.Body.Render("Study Statistics")))
	b.WriteString("\n")
	statsLine := fmt.Sprintf("  Correct %d   Incorrect %d   Total %d",
		stats.Correct, stats.Incorrect, stats.Total)
	b.WriteString(pad.Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)))
	b.WriteString("\n")

	if s.confirmClear {
		b.WriteString("\n")
		warn := theme.Incorrect.Render("Clear all data? This cannot be undone. (y/n)")
		b.WriteString(pad.Render(warn))
		b.WriteString("\n")
	} else if s.statusMsg != "" {
		b.WriteString("\n")
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.statusErr {
			style = style.Foreground(theme.Error)
		}
		b.WriteString(pad.Render(style.Render(s.statusMsg)))
		b.WriteString("\n")
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

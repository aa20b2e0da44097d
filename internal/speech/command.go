package speech

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"
)

// baseWordsPerMinute is the speaking rate that corresponds to rate 1.0
// for the command-line synthesizers we know about.
const baseWordsPerMinute = 175

// CommandSynthesizer speaks by shelling out to a local text-to-speech
// binary (say on macOS, espeak on Linux). A new Speak kills the running
// process before starting the next one.
type CommandSynthesizer struct {
	binary string
	notify func(Event)

	mu  sync.Mutex
	gen int
	cmd *exec.Cmd
}

// NewCommandSynthesizer resolves a TTS binary and returns a synthesizer
// using it. The binary is taken from ECHOLEARN_TTS when set, otherwise
// the first of say/espeak/espeak-ng found on PATH. Returns an error when
// no binary is available. notify may be nil.
func NewCommandSynthesizer(notify func(Event)) (*CommandSynthesizer, error) {
	if notify == nil {
		notify = func(Event) {}
	}

	if bin := os.Getenv("ECHOLEARN_TTS"); bin != "" {
		if _, err := exec.LookPath(bin); err != nil {
			return nil, fmt.Errorf("ECHOLEARN_TTS binary %q: %w", bin, err)
		}
		return &CommandSynthesizer{binary: bin, notify: notify}, nil
	}

	for _, bin := range []string{"say", "espeak", "espeak-ng"} {
		if _, err := exec.LookPath(bin); err == nil {
			return &CommandSynthesizer{binary: bin, notify: notify}, nil
		}
	}
	return nil, fmt.Errorf("no text-to-speech binary found (set ECHOLEARN_TTS)")
}

// Speak cancels any in-flight utterance and starts a new one.
func (s *CommandSynthesizer) Speak(text string, rate float64) {
	if text == "" {
		return
	}
	if rate <= 0 {
		rate = 1.0
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.killLocked()
	cmd := exec.Command(s.binary, s.args(text, rate)...) // #nosec G204 -- binary resolved from config
	s.cmd = cmd
	s.mu.Unlock()

	go s.run(cmd, gen, text)
}

// Stop cancels the in-flight utterance, if any.
func (s *CommandSynthesizer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.killLocked()
}

func (s *CommandSynthesizer) run(cmd *exec.Cmd, gen int, text string) {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: speech synthesis failed: %v\n", err)
		return
	}
	s.notify(Event{Kind: EventStarted, Text: text})
	_ = cmd.Wait()

	s.mu.Lock()
	current := gen == s.gen
	if current {
		s.cmd = nil
	}
	s.mu.Unlock()

	// A superseded utterance already had its ended event implied by the
	// replacement starting; only the current one reports completion.
	if current {
		s.notify(Event{Kind: EventEnded, Text: text})
	}
}

func (s *CommandSynthesizer) args(text string, rate float64) []string {
	wpm := strconv.Itoa(int(rate * baseWordsPerMinute))
	switch s.binary {
	case "say":
		return []string{"-r", wpm, text}
	default: // espeak and compatible
		return []string{"-s", wpm, text}
	}
}

func (s *CommandSynthesizer) killLocked() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	s.cmd = nil
}

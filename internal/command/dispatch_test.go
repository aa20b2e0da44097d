package command

import "testing"

func TestDispatch(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"next", ActionNext},
		{"continue please", ActionNext},
		{"repeat that", ActionRepeat},
		{"again", ActionRepeat},
		{"show answer", ActionReveal},
		{"reveal", ActionReveal},
		{"that is right", ActionMarkCorrect},
		{"correct", ActionMarkCorrect},
		{"wrong", ActionMarkIncorrect},
		{"previous", ActionPrevious},
		{"go back", ActionPrevious},
		{"stop", ActionStopSpeaking},
		{"pause", ActionStopSpeaking},
		{"", ActionNone},
		{"   ", ActionNone},
		{"hello there", ActionNone},
	}
	for _, tt := range tests {
		if got := Dispatch(tt.input); got != tt.want {
			t.Errorf("Dispatch(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDispatch_NormalizesCase(t *testing.T) {
	if got := Dispatch("  NEXT  "); got != ActionNext {
		t.Errorf("Dispatch = %v, want %v", got, ActionNext)
	}
}

func TestDispatch_PriorityOrder(t *testing.T) {
	// Both "back" and "wrong" appear; the incorrect/wrong rule is checked
	// before previous/back, so exactly that one fires.
	if got := Dispatch("go back that was wrong"); got != ActionMarkIncorrect {
		t.Errorf("Dispatch = %v, want %v", got, ActionMarkIncorrect)
	}
}

func TestDispatch_SubstringContainment(t *testing.T) {
	// "incorrect" contains "correct", and the correct/right rule is
	// checked first. Matching is substring containment by contract.
	if got := Dispatch("incorrect"); got != ActionMarkCorrect {
		t.Errorf("Dispatch(\"incorrect\") = %v, want %v", got, ActionMarkCorrect)
	}
}

func TestDispatch_Deterministic(t *testing.T) {
	input := "show answer and continue"
	first := Dispatch(input)
	for i := 0; i < 10; i++ {
		if got := Dispatch(input); got != first {
			t.Fatalf("Dispatch is not deterministic: %v then %v", first, got)
		}
	}
}

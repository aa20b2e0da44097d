package card

import (
	"testing"
	"time"
)

func TestNew_ImmediatelyDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New("What is Go?", "A programming language", now)

	if c.ID == "" {
		t.Error("expected a generated ID")
	}
	if !c.IsDue(now) {
		t.Error("new card should be immediately due")
	}
	if c.LastReviewed != nil {
		t.Error("new card should have no LastReviewed")
	}
	if c.Difficulty != DefaultDifficulty {
		t.Errorf("Difficulty = %v, want %v", c.Difficulty, DefaultDifficulty)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := New("Q?", "A", now)
		if seen[c.ID] {
			t.Fatalf("duplicate card ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		nextReview time.Time
		want       bool
	}{
		{"past", now.Add(-time.Hour), true},
		{"exactly now", now, true},
		{"future", now.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Card{NextReview: tt.nextReview}
			if got := c.IsDue(now); got != tt.want {
				t.Errorf("IsDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_DueCount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := Set{
		{NextReview: now.Add(-time.Hour)},
		{NextReview: now},
		{NextReview: now.Add(48 * time.Hour)},
	}
	if got := s.DueCount(now); got != 2 {
		t.Errorf("DueCount() = %d, want 2", got)
	}
}

func TestStats_Record(t *testing.T) {
	var s Stats
	s.Record(true)
	s.Record(false)

	if s.Correct != 1 || s.Incorrect != 1 || s.Total != 2 {
		t.Errorf("Stats = %+v, want {1 1 2}", s)
	}
	if s.Total != s.Correct+s.Incorrect {
		t.Errorf("invariant violated: total %d != %d + %d", s.Total, s.Correct, s.Incorrect)
	}
}

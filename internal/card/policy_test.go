package card

import (
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestApplyOutcome_CorrectLowersDifficulty(t *testing.T) {
	c := New("Q?", "A", testNow)
	got := ApplyOutcome(c, true, testNow)

	if math.Abs(got.Difficulty-1.9) > 1e-9 {
		t.Errorf("Difficulty = %v, want 1.9", got.Difficulty)
	}
	if got.CorrectCount != 1 || got.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 1/0", got.CorrectCount, got.IncorrectCount)
	}
	if got.LastReviewed == nil || !got.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, testNow)
	}
}

func TestApplyOutcome_CorrectInterval(t *testing.T) {
	// difficulty 2 -> 1.9 after the answer, floor 1 -> 1 day base,
	// times (correctCount+1) = 2 -> two days out.
	c := New("Q?", "A", testNow)
	got := ApplyOutcome(c, true, testNow)

	want := testNow.Add(2 * 24 * time.Hour)
	if !got.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, want)
	}
}

func TestApplyOutcome_IncorrectAlwaysOneDay(t *testing.T) {
	tests := []struct {
		name       string
		difficulty float64
		correct    int
	}{
		{"fresh card", 2.0, 0},
		{"easy card", 1.0, 9},
		{"hard card", 3.0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("Q?", "A", testNow)
			c.Difficulty = tt.difficulty
			c.CorrectCount = tt.correct

			got := ApplyOutcome(c, false, testNow)

			want := testNow.Add(24 * time.Hour)
			if !got.NextReview.Equal(want) {
				t.Errorf("NextReview = %v, want %v", got.NextReview, want)
			}
			if got.IncorrectCount != 1 {
				t.Errorf("IncorrectCount = %d, want 1", got.IncorrectCount)
			}
		})
	}
}

func TestApplyOutcome_IncorrectRaisesDifficulty(t *testing.T) {
	c := New("Q?", "A", testNow)
	got := ApplyOutcome(c, false, testNow)

	if math.Abs(got.Difficulty-2.3) > 1e-9 {
		t.Errorf("Difficulty = %v, want 2.3", got.Difficulty)
	}
}

func TestApplyOutcome_DifficultyBoundedBelow(t *testing.T) {
	c := New("Q?", "A", testNow)
	prev := c.Difficulty
	for i := 0; i < 50; i++ {
		c = ApplyOutcome(c, true, testNow)
		if c.Difficulty > prev+1e-9 {
			t.Fatalf("difficulty increased on correct answer: %v -> %v", prev, c.Difficulty)
		}
		if c.Difficulty < MinDifficulty {
			t.Fatalf("difficulty %v below floor %v", c.Difficulty, MinDifficulty)
		}
		prev = c.Difficulty
	}
	if math.Abs(c.Difficulty-MinDifficulty) > 1e-9 {
		t.Errorf("Difficulty = %v after 50 correct answers, want %v", c.Difficulty, MinDifficulty)
	}
}

func TestApplyOutcome_DifficultyBoundedAbove(t *testing.T) {
	c := New("Q?", "A", testNow)
	prev := c.Difficulty
	for i := 0; i < 50; i++ {
		c = ApplyOutcome(c, false, testNow)
		if c.Difficulty < prev-1e-9 {
			t.Fatalf("difficulty decreased on incorrect answer: %v -> %v", prev, c.Difficulty)
		}
		if c.Difficulty > MaxDifficulty {
			t.Fatalf("difficulty %v above ceiling %v", c.Difficulty, MaxDifficulty)
		}
		prev = c.Difficulty
	}
	if math.Abs(c.Difficulty-MaxDifficulty) > 1e-9 {
		t.Errorf("Difficulty = %v after 50 incorrect answers, want %v", c.Difficulty, MaxDifficulty)
	}
}

func TestApplyOutcome_ExactlyOneCounterIncrements(t *testing.T) {
	c := New("Q?", "A", testNow)
	c.CorrectCount = 3
	c.IncorrectCount = 2

	right := ApplyOutcome(c, true, testNow)
	if right.CorrectCount != 4 || right.IncorrectCount != 2 {
		t.Errorf("correct answer: counts = %d/%d, want 4/2", right.CorrectCount, right.IncorrectCount)
	}

	wrong := ApplyOutcome(c, false, testNow)
	if wrong.CorrectCount != 3 || wrong.IncorrectCount != 3 {
		t.Errorf("incorrect answer: counts = %d/%d, want 3/3", wrong.CorrectCount, wrong.IncorrectCount)
	}
}

func TestApplyOutcome_DoesNotMutateInput(t *testing.T) {
	c := New("Q?", "A", testNow)
	_ = ApplyOutcome(c, true, testNow)

	if c.CorrectCount != 0 || c.LastReviewed != nil {
		t.Error("ApplyOutcome mutated its input card")
	}
	if c.Difficulty != DefaultDifficulty {
		t.Errorf("input difficulty changed to %v", c.Difficulty)
	}
}

func TestApplyOutcome_GrowingIntervalWithStreak(t *testing.T) {
	// Once difficulty bottoms out at 1 the base interval stays 1 day and
	// the multiplier (correctCount+1) drives growth.
	c := New("Q?", "A", testNow)
	c.Difficulty = MinDifficulty
	c.CorrectCount = 4

	got := ApplyOutcome(c, true, testNow)

	want := testNow.Add(6 * 24 * time.Hour) // 1 day * (5+1)
	if !got.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, want)
	}
}

func TestBaseIntervalDays(t *testing.T) {
	tests := []struct {
		difficulty float64
		want       int
	}{
		{1.0, 1},
		{1.9, 1},
		{2.0, 3},
		{2.7, 3},
		{3.0, 7},
		{0.0, 1},  // out of table, defensive default
		{4.2, 1},  // out of table, defensive default
		{-1.0, 1}, // out of table, defensive default
	}
	for _, tt := range tests {
		if got := baseIntervalDays(tt.difficulty); got != tt.want {
			t.Errorf("baseIntervalDays(%v) = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}

func TestNormalize_SeedsUnsetDifficulty(t *testing.T) {
	c := Card{ID: "x", Question: "Q?", Answer: "A"}
	c.Normalize()
	if c.Difficulty != DefaultDifficulty {
		t.Errorf("Difficulty = %v, want %v", c.Difficulty, DefaultDifficulty)
	}
}

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	low := Card{Difficulty: 0.4}
	low.Normalize()
	if low.Difficulty != MinDifficulty {
		t.Errorf("low: Difficulty = %v, want %v", low.Difficulty, MinDifficulty)
	}

	high := Card{Difficulty: 9.5}
	high.Normalize()
	if high.Difficulty != MaxDifficulty {
		t.Errorf("high: Difficulty = %v, want %v", high.Difficulty, MaxDifficulty)
	}
}

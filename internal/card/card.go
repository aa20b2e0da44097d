package card

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single question/answer study item with its scheduling state.
type Card struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Difficulty     float64    `json:"difficulty"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	NextReview     time.Time  `json:"next_review"`
}

// New creates a card that is immediately due, seeded at the neutral difficulty.
func New(question, answer string, now time.Time) Card {
	return Card{
		ID:         uuid.NewString(),
		Question:   question,
		Answer:     answer,
		Difficulty: DefaultDifficulty,
		NextReview: now,
	}
}

// IsDue returns true if the card is due for review (at or past NextReview).
func (c *Card) IsDue(now time.Time) bool {
	return !now.Before(c.NextReview)
}

// Reviews returns the total number of recorded answers for this card.
func (c *Card) Reviews() int {
	return c.CorrectCount + c.IncorrectCount
}

// Normalize repairs state loaded from storage or an imported document:
// an unset difficulty is seeded at the neutral default and out-of-range
// values are clamped back into the valid range.
func (c *Card) Normalize() {
	if c.Difficulty == 0 {
		c.Difficulty = DefaultDifficulty
		return
	}
	c.Difficulty = clampDifficulty(c.Difficulty)
}

// Set is the ordered study sequence. Order is stable across sessions
// unless the set is regenerated wholesale.
type Set []Card

// DueCount returns how many cards in the set are due at the given time.
func (s Set) DueCount(now time.Time) int {
	n := 0
	for i := range s {
		if s[i].IsDue(now) {
			n++
		}
	}
	return n
}

// Normalize repairs every card in the set.
func (s Set) Normalize() {
	for i := range s {
		s[i].Normalize()
	}
}

// Stats holds aggregate answer counters for the whole session history.
// Total is always Correct + Incorrect.
type Stats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Total     int `json:"total"`
}

// Record adds one answer outcome to the aggregate counters.
func (s *Stats) Record(correct bool) {
	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Total = s.Correct + s.Incorrect
}

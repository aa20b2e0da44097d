package card

import "time"

// Difficulty bounds and the neutral starting value. Lower is easier.
const (
	MinDifficulty     = 1.0
	MaxDifficulty     = 3.0
	DefaultDifficulty = 2.0
)

// Per-answer difficulty adjustments. Wrong answers raise difficulty three
// times faster than right answers lower it, so missed items are re-drilled.
const (
	correctStep   = 0.1
	incorrectStep = 0.3
)

// baseIntervals maps floor(difficulty) to a base review interval in days.
var baseIntervals = map[int]int{
	1: 1,
	2: 3,
	3: 7,
}

// fallbackIntervalDays is used when floor(difficulty) falls outside the table.
const fallbackIntervalDays = 1

// ApplyOutcome returns the card's next scheduling state after one answer.
// It is a pure function: the input card is not mutated and the caller is
// responsible for persisting the result.
//
// A correct answer lowers difficulty by 0.1 (floor 1) and schedules the
// card baseInterval * (correctCount+1) days out. An incorrect answer raises
// difficulty by 0.3 (ceiling 3) and forces a retry in exactly one day.
func ApplyOutcome(c Card, correct bool, now time.Time) Card {
	reviewed := now
	c.LastReviewed = &reviewed

	if correct {
		c.CorrectCount++
		c.Difficulty = clampDifficulty(c.Difficulty - correctStep)
	} else {
		c.IncorrectCount++
		c.Difficulty = clampDifficulty(c.Difficulty + incorrectStep)
	}

	days := fallbackIntervalDays
	if correct {
		days = baseIntervalDays(c.Difficulty) * (c.CorrectCount + 1)
	}
	c.NextReview = now.Add(time.Duration(days) * 24 * time.Hour)

	return c
}

// baseIntervalDays looks up the base interval for a difficulty value.
// Out-of-range values fall back to one day rather than failing.
func baseIntervalDays(difficulty float64) int {
	if days, ok := baseIntervals[int(difficulty)]; ok {
		return days
	}
	return fallbackIntervalDays
}

func clampDifficulty(d float64) float64 {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

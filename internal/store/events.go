package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReviewEventData captures one card review outcome.
type ReviewEventData struct {
	CardID       string
	Correct      bool
	Difficulty   float64
	IntervalDays int
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendReview records a card review outcome.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ReviewCount returns the total number of recorded reviews.
	ReviewCount(ctx context.Context) (int, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO review_events (card_id, correct, difficulty, interval_days, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		data.CardID, data.Correct, data.Difficulty, data.IntervalDays, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewCount(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return n, nil
}

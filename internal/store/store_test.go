package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ahmadkhatib02/echolearn/internal/card"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestDocuments_LoadMissing(t *testing.T) {
	st := openTestStore(t)

	var out map[string]any
	ok, err := st.Documents().Load(context.Background(), CollectionCards, SessionKey, &out)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDocuments_SaveOverwrites(t *testing.T) {
	st := openTestStore(t)
	docs := st.Documents()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, CollectionStats, SessionKey, card.Stats{Correct: 1, Total: 1}))
	require.NoError(t, docs.Save(ctx, CollectionStats, SessionKey, card.Stats{Correct: 2, Incorrect: 1, Total: 3}))

	var got card.Stats
	ok, err := docs.Load(ctx, CollectionStats, SessionKey, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, card.Stats{Correct: 2, Incorrect: 1, Total: 3}, got)
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	st := openTestStore(t)
	sessions := st.Sessions()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cards := card.Set{
		card.New("What is WAL?", "Write-ahead logging", now),
		card.New("What is a pragma?", "A SQLite configuration statement", now),
	}
	cards[0] = card.ApplyOutcome(cards[0], true, now)

	require.NoError(t, sessions.SaveCards(ctx, cards))

	got, ok, err := sessions.LoadCards(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	require.Equal(t, cards[0].ID, got[0].ID)
	require.Equal(t, cards[0].CorrectCount, got[0].CorrectCount)
	require.InDelta(t, cards[0].Difficulty, got[0].Difficulty, 1e-9)
	require.True(t, got[0].NextReview.Equal(cards[0].NextReview))
}

func TestSessionRepo_LoadCardsNormalizes(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	// A record written before difficulty seeding existed.
	legacy := []map[string]any{
		{"id": "1", "question": "Q?", "answer": "A", "difficulty": 0},
	}
	require.NoError(t, st.Documents().Save(ctx, CollectionCards, SessionKey, legacy))

	got, ok, err := st.Sessions().LoadCards(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, card.DefaultDifficulty, got[0].Difficulty)
}

func TestSessionRepo_Clear(t *testing.T) {
	st := openTestStore(t)
	sessions := st.Sessions()
	ctx := context.Background()

	require.NoError(t, sessions.SaveCards(ctx, card.Set{card.New("Q?", "A", time.Now())}))
	require.NoError(t, sessions.SaveStats(ctx, card.Stats{Correct: 1, Total: 1}))
	require.NoError(t, sessions.Clear(ctx))

	_, ok, err := sessions.LoadCards(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = sessions.LoadStats(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEvents_AppendAndCount(t *testing.T) {
	st := openTestStore(t)
	events := st.Events()
	ctx := context.Background()

	require.NoError(t, events.AppendReview(ctx, ReviewEventData{
		CardID: "c1", Correct: true, Difficulty: 1.9, IntervalDays: 2,
	}))
	require.NoError(t, events.AppendReview(ctx, ReviewEventData{
		CardID: "c1", Correct: false, Difficulty: 2.2, IntervalDays: 1,
	}))

	n, err := events.ReviewCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "card-gen",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 5, Success: true,
	}))
}

package store

import (
	"context"

	"github.com/ahmadkhatib02/echolearn/internal/card"
)

// SessionRepo persists the two session records: the card set and the
// aggregate stats. They are saved independently; there is no transaction
// spanning both (each record is durable on its own).
type SessionRepo struct {
	docs DocumentRepo
}

// NewSessionRepo builds a SessionRepo over an arbitrary DocumentRepo.
func NewSessionRepo(docs DocumentRepo) *SessionRepo {
	return &SessionRepo{docs: docs}
}

// SaveCards overwrites the persisted card set.
func (r *SessionRepo) SaveCards(ctx context.Context, cards card.Set) error {
	return r.docs.Save(ctx, CollectionCards, SessionKey, cards)
}

// LoadCards returns the persisted card set, normalized. The boolean is
// false when no card set has been saved yet.
func (r *SessionRepo) LoadCards(ctx context.Context) (card.Set, bool, error) {
	var cards card.Set
	ok, err := r.docs.Load(ctx, CollectionCards, SessionKey, &cards)
	if err != nil || !ok {
		return nil, false, err
	}
	cards.Normalize()
	return cards, true, nil
}

// SaveStats overwrites the persisted aggregate stats.
func (r *SessionRepo) SaveStats(ctx context.Context, stats card.Stats) error {
	return r.docs.Save(ctx, CollectionStats, SessionKey, stats)
}

// LoadStats returns the persisted stats; the boolean is false when none
// have been saved yet.
func (r *SessionRepo) LoadStats(ctx context.Context) (card.Stats, bool, error) {
	var stats card.Stats
	ok, err := r.docs.Load(ctx, CollectionStats, SessionKey, &stats)
	if err != nil || !ok {
		return card.Stats{}, false, err
	}
	return stats, true, nil
}

// Clear removes both records. Used by the clear-all-data operation.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if err := r.docs.Delete(ctx, CollectionCards, SessionKey); err != nil {
		return err
	}
	return r.docs.Delete(ctx, CollectionStats, SessionKey)
}

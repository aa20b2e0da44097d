// Package export implements the backup codec: the full session (cards
// plus stats) serialized to a single portable JSON document.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ahmadkhatib02/echolearn/internal/card"
)

// Document is the backup file format. Field names are fixed; backups
// from older builds must keep decoding.
type Document struct {
	Cards            card.Set       `json:"flashcards"`
	SpacedRepetition map[string]any `json:"spacedRepetition"`
	Stats            card.Stats     `json:"studyStats"`
	ExportedAt       time.Time      `json:"exportDate"`
}

// Encode serializes the session to an indented, human-diffable JSON
// document.
func Encode(cards card.Set, stats card.Stats, now time.Time) ([]byte, error) {
	doc := Document{
		Cards:            cards,
		SpacedRepetition: map[string]any{},
		Stats:            stats,
		ExportedAt:       now,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// Decode restores a session from a backup document. The export
// timestamp is ignored; cards are normalized so documents written by
// builds without a difficulty default import cleanly.
func Decode(data []byte) (card.Set, card.Stats, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, card.Stats{}, fmt.Errorf("decode backup: %w", err)
	}
	if doc.Stats.Total != doc.Stats.Correct+doc.Stats.Incorrect {
		return nil, card.Stats{}, fmt.Errorf("decode backup: stats total %d does not match %d correct + %d incorrect",
			doc.Stats.Total, doc.Stats.Correct, doc.Stats.Incorrect)
	}
	for i := range doc.Cards {
		if doc.Cards[i].Question == "" || doc.Cards[i].Answer == "" {
			return nil, card.Stats{}, fmt.Errorf("decode backup: card %d has an empty question or answer", i)
		}
	}
	doc.Cards.Normalize()
	return doc.Cards, doc.Stats, nil
}

// Filename returns the backup file name for the given date, e.g.
// "echolearn-backup-2026-08-31.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("echolearn-backup-%s.json", now.Format("2006-01-02"))
}

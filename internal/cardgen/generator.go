package cardgen

import (
	"context"

	"github.com/ahmadkhatib02/echolearn/internal/card"
)

// Generator produces flashcards from study material using an LLM provider.
type Generator interface {
	// Generate turns the given source text into up to MaxCards flashcards.
	// The returned cards are fresh: unreviewed, with default difficulty.
	Generate(ctx context.Context, sourceText string) ([]card.Card, error)
}

// MaxCards caps the number of flashcards produced per generation.
const MaxCards = 8

package cardgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ahmadkhatib02/echolearn/internal/card"
	"github.com/ahmadkhatib02/echolearn/internal/llm"
)

// Config holds generation limits for the LLM request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// deckOutput is the raw LLM response before conversion.
type deckOutput struct {
	Cards []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"cards"`
}

// Generate turns the given source text into up to MaxCards flashcards.
func (g *LLMGenerator) Generate(ctx context.Context, sourceText string) ([]card.Card, error) {
	sourceText = strings.TrimSpace(sourceText)
	if sourceText == "" {
		return nil, ErrEmptyInput
	}

	ctx = llm.WithPurpose(ctx, "card-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sourceText)},
		},
		Schema:      FlashcardSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	var raw deckOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse flashcard response: %w", err)
	}

	now := g.now()
	cards := make([]card.Card, 0, len(raw.Cards))
	for _, rc := range raw.Cards {
		q := strings.TrimSpace(rc.Question)
		a := strings.TrimSpace(rc.Answer)
		if q == "" || a == "" {
			continue
		}
		cards = append(cards, card.New(q, a, now))
		if len(cards) == MaxCards {
			break
		}
	}

	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return cards, nil
}

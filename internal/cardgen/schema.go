package cardgen

import "github.com/ahmadkhatib02/echolearn/internal/llm"

// FlashcardSchema defines the JSON schema for LLM flashcard generation
// responses. The array is wrapped in an object because some providers
// require an object at the schema root for structured output.
var FlashcardSchema = &llm.Schema{
	Name:        "flashcard-deck",
	Description: "A set of study flashcards generated from source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type":        "array",
				"maxItems":    MaxCards,
				"description": "Up to 8 flashcards covering the key facts in the text",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "A clear, self-contained question about one fact from the text",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "A concise answer to the question",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

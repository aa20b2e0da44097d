package cardgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a smart study assistant. Turn the text the user provides into flashcards.

Rules:
- Each flashcard has a "question" and an "answer".
- Use clear, concise language suitable for being read aloud.
- Cover the most important facts in the text. Do not invent facts that are not in the text.
- Questions must be self-contained: understandable without seeing the source text.
- Generate up to 8 flashcards. Fewer is fine for short texts.`

// buildUserMessage wraps the source text for the generation request.
func buildUserMessage(sourceText string) string {
	var b strings.Builder
	b.WriteString("Turn the following text into flashcards.\n\nText:\n")
	fmt.Fprintf(&b, "\"\"\"\n%s\n\"\"\"\n", sourceText)
	return b.String()
}

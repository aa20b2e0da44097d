package cardgen

import (
	"errors"
	"fmt"

	"github.com/ahmadkhatib02/echolearn/internal/llm"
)

// ErrEmptyInput is returned when the source text is empty after trimming.
var ErrEmptyInput = errors.New("please provide valid text to turn into flashcards")

// ErrNoCards is returned when the model produced no usable card pairs.
var ErrNoCards = errors.New("no flashcards could be generated from this text")

// GenerationError wraps a provider failure with a message suitable for
// showing to the user directly.
type GenerationError struct {
	UserMessage string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// wrapProviderError translates provider error kinds into user-facing
// generation errors.
func wrapProviderError(err error) error {
	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return &GenerationError{
			UserMessage: "Too many requests. Please try again later.",
			Err:         err,
		}
	}

	var unauth *llm.ErrUnauthorized
	if errors.As(err, &unauth) {
		return &GenerationError{
			UserMessage: "LLM API configuration error. Check your API key.",
			Err:         err,
		}
	}

	return &GenerationError{
		UserMessage: "Failed to generate flashcards. Please try again.",
		Err:         err,
	}
}

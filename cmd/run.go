package cmd

import (
	"fmt"
	"os"

	"github.com/ahmadkhatib02/echolearn/internal/app"
	"github.com/ahmadkhatib02/echolearn/internal/cardgen"
	"github.com/ahmadkhatib02/echolearn/internal/llm"
	"github.com/ahmadkhatib02/echolearn/internal/session"
	"github.com/ahmadkhatib02/echolearn/internal/speech"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	machine := session.New(st.Sessions(), st.Events())
	machine.Load(ctx)

	opts := app.Options{
		Machine: machine,
		NewSynth: func(notify func(speech.Event)) (speech.Synthesizer, error) {
			return speech.NewCommandSynthesizer(notify)
		},
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Flashcard generation will be unavailable.")
	} else {
		opts.Generator = cardgen.New(provider, cardgen.DefaultConfig())
	}

	return app.Run(opts)
}

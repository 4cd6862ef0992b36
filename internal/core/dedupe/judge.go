package dedupe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"docsift/internal/config"
	"docsift/internal/core/collect"
	"docsift/internal/llm"
)

const judgeMaxTokens = 1000

// Judge asks the model which fingerprinted documents duplicate each other.
// The whole batch goes out in a single request: cost stays at one round trip
// per run, at the price of a prompt that grows with the document count.
type Judge struct {
	Client  llm.Client
	Prompts config.Prompts
}

func NewJudge(client llm.Client, prompts config.Prompts) *Judge {
	return &Judge{
		Client:  client,
		Prompts: prompts,
	}
}

// Judge returns the model's raw verdict text, trimmed. Transport failures
// are fatal for the run; there is no retry and no partial result. An empty
// batch never reaches the model: the call is skipped with a warning and an
// empty verdict.
func (j *Judge) Judge(ctx context.Context, fps *collect.Fingerprints) (string, error) {
	if fps.Len() == 0 {
		log.Warn("No valid snippets to process for duplicates")
		return "", nil
	}

	var b strings.Builder
	b.WriteString(j.Prompts.DedupeIntro)
	b.WriteString("\n\n")
	for _, e := range fps.Entries() {
		fmt.Fprintf(&b, "File '%s': %s\n", filepath.Base(e.Path), e.Snippet)
	}
	b.WriteString("\n")
	b.WriteString(j.Prompts.DedupeInstruction)

	verdict, err := j.Client.Complete(ctx, j.Prompts.DedupeSystem, b.String(), judgeMaxTokens)
	if err != nil {
		return "", fmt.Errorf("duplicate comparison request failed: %w", err)
	}

	return strings.TrimSpace(verdict), nil
}

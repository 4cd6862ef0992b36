package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"docsift/internal/core/rename"
	"docsift/internal/core/snippet"
)

var (
	renameNumSentences int
	renameNumWords     int
	renameSystemPrompt string
	renameExtraPrompt  string
	renameMaxTokens    int
	renameFormat       string
	renameDryRun       bool
	renameSleep        int
)

var renameCmd = &cobra.Command{
	Use:   "rename <file-pattern>",
	Short: "Rename PDFs after their content",
	Long: `Generate a descriptive title for each matched PDF and rename the
file accordingly. One model request is made per file, throttled by --sleep.
Unless --num-words is given, each page contributes its first sentence
(--num-sentences, default 1) to the content sent to the model.

With --format, the new name is produced from a Go template whose fields the
model extracts from the document, e.g. --format '{{.Year}} {{.Title}}.pdf'.

Examples:
  docsift rename --dry-run 'scans/*.pdf'
  docsift rename --num-words 80 --format '{{.Title | title}}.pdf' 'inbox/*.pdf'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := snippet.Sentences(renameNumSentences)
		if renameNumWords > 0 {
			policy = snippet.Words(renameNumWords)
		}

		systemPrompt := renameSystemPrompt
		if systemPrompt == "" {
			systemPrompt = cfg.Prompts.RenameSystem
		}

		r := &rename.Renamer{
			Client:           client,
			Extractor:        snippet.NewExtractor(policy),
			SystemPrompt:     systemPrompt,
			AdditionalPrompt: renameExtraPrompt,
			MaxTokens:        renameMaxTokens,
			Format:           renameFormat,
			DryRun:           renameDryRun,
			Sleep:            time.Duration(renameSleep) * time.Second,
			Conflicts:        &rename.TerminalResolver{In: os.Stdin, Out: os.Stdout},
		}

		return r.ProcessAll(cmd.Context(), args[0])
	},
}

func init() {
	renameCmd.Flags().IntVar(&renameNumSentences, "num-sentences", 1, "number of sentences to extract per page")
	renameCmd.Flags().IntVar(&renameNumWords, "num-words", 0, "number of words to extract per page")
	renameCmd.Flags().StringVar(&renameSystemPrompt, "system-prompt", "", "override the title-generation system prompt")
	renameCmd.Flags().StringVar(&renameExtraPrompt, "additional-prompt", "", "extra instructions appended to the system prompt")
	renameCmd.Flags().IntVar(&renameMaxTokens, "max-tokens", 50, "token budget for the generated title")
	renameCmd.Flags().StringVar(&renameFormat, "format", "", "Go template for the new file name")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "log what would be renamed without touching files")
	renameCmd.Flags().IntVar(&renameSleep, "sleep", 3, "seconds to sleep between files to avoid rate limiting")
	renameCmd.MarkFlagsMutuallyExclusive("num-sentences", "num-words")

	rootCmd.AddCommand(renameCmd)
}

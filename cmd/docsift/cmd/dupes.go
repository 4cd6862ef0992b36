package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docsift/internal/core/collect"
	"docsift/internal/core/dedupe"
	"docsift/internal/core/snippet"
)

var (
	dupesNumSentences int
	dupesNumWords     int
	dupesDelete       bool
	dupesWorkers      int
)

var dupesCmd = &cobra.Command{
	Use:   "dupes <file-pattern>",
	Short: "Find PDFs with duplicate content",
	Long: `Find PDFs whose first-page content duplicates another file's.

All matched files are fingerprinted concurrently and compared in a single
model request. Unless --num-words is given, the fingerprint is the first
sentence of page one (--num-sentences, default 1). With --delete, the
second file of each reported pair is removed; the first-listed file is
always the one kept.

Examples:
  docsift dupes 'scans/*.pdf'
  docsift dupes --num-words 40 --delete 'inbox/**.pdf'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := snippet.Sentences(dupesNumSentences)
		if dupesNumWords > 0 {
			policy = snippet.Words(dupesNumWords)
		}

		workers := dupesWorkers
		if workers == 0 {
			workers = cfg.Concurrency.ExtractWorkers
		}

		extractor := snippet.NewExtractor(policy)
		collector := collect.NewCollector(extractor.FirstPage, workers)

		fps, err := collector.Collect(args[0])
		if err != nil {
			return err
		}
		if fps.Len() == 0 {
			log.Warn("No valid snippets to process for duplicates")
			return nil
		}

		judge := dedupe.NewJudge(client, cfg.Prompts)
		verdict, err := judge.Judge(cmd.Context(), fps)
		if err != nil {
			return err
		}

		log.Infof("Duplicate Report:\n%s", verdict)

		outcomes := dedupe.ResolveDeletions(verdict, fps, dupesDelete)

		var deleted, reported, skipped int
		for _, o := range outcomes {
			switch o.Action {
			case dedupe.ActionDeleted:
				deleted++
			case dedupe.ActionReported:
				reported++
			case dedupe.ActionSkipped:
				skipped++
			}
		}
		log.Infof("Duplicate pairs: %d reported, %d deleted, %d skipped", reported, deleted, skipped)
		return nil
	},
}

func init() {
	dupesCmd.Flags().IntVar(&dupesNumSentences, "num-sentences", 1, "number of first-page sentences per fingerprint")
	dupesCmd.Flags().IntVar(&dupesNumWords, "num-words", 0, "number of first-page words per fingerprint")
	dupesCmd.Flags().BoolVar(&dupesDelete, "delete", false, "delete the second file of each duplicate pair")
	dupesCmd.Flags().IntVar(&dupesWorkers, "workers", 0, "extraction worker count (default: config, then NumCPU)")
	dupesCmd.MarkFlagsMutuallyExclusive("num-sentences", "num-words")

	rootCmd.AddCommand(dupesCmd)
}

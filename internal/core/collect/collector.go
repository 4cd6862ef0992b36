package collect

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ExtractFunc produces the snippet for one document.
type ExtractFunc func(path string) (string, error)

// Collector fans extraction out over a bounded worker pool and funnels the
// results into a single Fingerprints set. Individual failures are logged and
// excluded; they never abort the batch.
type Collector struct {
	Extract ExtractFunc
	Workers int
}

func NewCollector(extract ExtractFunc, workers int) *Collector {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Collector{Extract: extract, Workers: workers}
}

type result struct {
	path    string
	snippet string
	err     error
}

// Collect resolves pattern to PDF files and fingerprints them concurrently.
// Entries land in completion order. The returned error covers only a bad
// glob pattern, never per-file trouble.
func (c *Collector) Collect(pattern string) (*Fingerprints, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	var paths []string
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".pdf") {
			paths = append(paths, m)
		}
	}

	fps := NewFingerprints()
	if len(paths) == 0 {
		return fps, nil
	}

	workers := c.Workers
	if workers > len(paths) {
		workers = len(paths)
	}

	tasks := make(chan string)
	results := make(chan result, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range tasks {
				snippet, err := c.Extract(path)
				results <- result{path: path, snippet: snippet, err: err}
			}
		}()
	}

	go func() {
		for _, path := range paths {
			tasks <- path
		}
		close(tasks)
		wg.Wait()
		close(results)
	}()

	// Single consumer: the workers never touch the map, so no lock on it.
	done := 0
	for r := range results {
		done++
		switch {
		case r.err != nil:
			log.WithError(r.err).Warnf("Skipping file %s due to extraction errors", r.path)
		case r.snippet == "":
			log.Warnf("Skipping file %s: no extractable text", r.path)
		default:
			fps.Add(r.path, r.snippet)
		}
		log.Infof("Processing PDFs (%d/%d)", done, len(paths))
	}

	return fps, nil
}

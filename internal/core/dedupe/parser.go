package dedupe

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	pairMarker    = "are duplicates"
	pairSeparator = " and "
	fileMarker    = "File '"
)

// Pair is one duplicate claim from the verdict. By convention the first
// file is kept and the second removed; the model is never asked which copy
// is canonical.
type Pair struct {
	Keep   string
	Remove string
}

// ParsePairs extracts duplicate pairs from the model's free-text verdict.
// It is deliberately coupled to the phrasing pinned in the judge
// instruction: a candidate line contains "are duplicates", splits once on
// " and ", and names each file as File '<basename>'. Candidate lines that
// fail the structure are logged and skipped; all other lines are ignored
// silently.
func ParsePairs(verdict string) []Pair {
	var pairs []Pair
	for _, line := range strings.Split(verdict, "\n") {
		if !strings.Contains(line, pairMarker) {
			continue
		}

		left, right, found := strings.Cut(line, pairSeparator)
		if !found {
			log.Errorf("Could not parse duplicate line (missing %q): %s", pairSeparator, line)
			continue
		}

		keep, ok1 := quotedFilename(left)
		remove, ok2 := quotedFilename(right)
		if !ok1 || !ok2 {
			log.Errorf("Could not parse file names from duplicate line: %s", line)
			continue
		}

		pairs = append(pairs, Pair{Keep: keep, Remove: remove})
	}
	return pairs
}

// quotedFilename pulls the basename between the first "File '" marker and
// the next single quote.
func quotedFilename(segment string) (string, bool) {
	_, after, found := strings.Cut(segment, fileMarker)
	if !found {
		return "", false
	}
	name, _, found := strings.Cut(after, "'")
	if !found || name == "" {
		return "", false
	}
	return name, true
}

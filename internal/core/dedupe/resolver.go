package dedupe

import (
	"os"

	log "github.com/sirupsen/logrus"

	"docsift/internal/core/collect"
)

type Action string

const (
	// ActionReported: deletion disabled, pair reported only.
	ActionReported Action = "reported"
	// ActionDeleted: the second file of the pair was removed.
	ActionDeleted Action = "deleted"
	// ActionSkipped: nothing happened; Reason says why.
	ActionSkipped Action = "skipped"
)

// Outcome records what happened to one parsed pair.
type Outcome struct {
	Pair       Pair
	KeepPath   string
	RemovePath string
	Action     Action
	Reason     string
}

// ResolveDeletions maps the verdict back to filesystem paths and, when
// enabled, deletes the second file of each pair. Every failure below the
// batch level is recovered: unresolvable names, already-gone files and
// OS errors each produce a logged skip outcome and the run continues.
func ResolveDeletions(verdict string, fps *collect.Fingerprints, deleteEnabled bool) []Outcome {
	var outcomes []Outcome
	for _, pair := range ParsePairs(verdict) {
		keepPath, keepOK := fps.PathByBase(pair.Keep)
		removePath, removeOK := fps.PathByBase(pair.Remove)
		if !keepOK || !removeOK {
			log.Errorf("Discarding pair (%s, %s): file name not found in this batch", pair.Keep, pair.Remove)
			outcomes = append(outcomes, Outcome{
				Pair:   pair,
				Action: ActionSkipped,
				Reason: "file name not found in this batch",
			})
			continue
		}

		o := Outcome{
			Pair:       pair,
			KeepPath:   keepPath,
			RemovePath: removePath,
		}

		if !deleteEnabled {
			o.Action = ActionReported
			log.Infof("Duplicate pair: keeping %s, would remove %s", keepPath, removePath)
			outcomes = append(outcomes, o)
			continue
		}

		switch err := os.Remove(removePath); {
		case err == nil:
			o.Action = ActionDeleted
			log.Infof("Deleted duplicate file: %s", removePath)
		case os.IsNotExist(err):
			o.Action = ActionSkipped
			o.Reason = "file already absent"
			log.Warnf("Duplicate file already absent: %s", removePath)
		default:
			o.Action = ActionSkipped
			o.Reason = err.Error()
			log.WithError(err).Errorf("Error deleting file %s", removePath)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}

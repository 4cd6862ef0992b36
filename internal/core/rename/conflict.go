package rename

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrQuit aborts the whole rename run at the user's request.
var ErrQuit = errors.New("rename aborted by user")

type ConflictAction int

const (
	ConflictSkip ConflictAction = iota
	ConflictRename
	ConflictOverwrite
	ConflictDeleteSource
	ConflictQuit
)

type Resolution struct {
	Action ConflictAction
	// NewName is the replacement file name when Action is ConflictRename.
	NewName string
}

// ConflictResolver decides what to do when the target file name already
// exists. The terminal implementation below is the only interactive piece
// of the tool; tests substitute a scripted resolver.
type ConflictResolver interface {
	Resolve(src, dst string) (Resolution, error)
}

type TerminalResolver struct {
	In  io.Reader
	Out io.Writer
}

func (t *TerminalResolver) Resolve(src, dst string) (Resolution, error) {
	scanner := bufio.NewScanner(t.In)
	for {
		fmt.Fprintf(t.Out, "Target %s already exists. Enter 'r' to rename, 's' to skip, 'e' to erase the existing file, 'd' to delete the current file, 'q' to quit: ", dst)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Resolution{}, err
			}
			return Resolution{Action: ConflictSkip}, nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "r":
			fmt.Fprint(t.Out, "Enter new name: ")
			if !scanner.Scan() {
				return Resolution{Action: ConflictSkip}, scanner.Err()
			}
			name := strings.TrimSpace(scanner.Text())
			if name == "" {
				continue
			}
			return Resolution{Action: ConflictRename, NewName: name}, nil
		case "s":
			return Resolution{Action: ConflictSkip}, nil
		case "e":
			return Resolution{Action: ConflictOverwrite}, nil
		case "d":
			return Resolution{Action: ConflictDeleteSource}, nil
		case "q":
			return Resolution{Action: ConflictQuit}, nil
		}
	}
}

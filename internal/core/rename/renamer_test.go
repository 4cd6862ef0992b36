package rename

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsift/internal/llm"
)

type scriptedResolver struct {
	resolution Resolution
	calls      int
}

func (s *scriptedResolver) Resolve(src, dst string) (Resolution, error) {
	s.calls++
	return s.resolution, nil
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))
	return path
}

func TestGenerateTitle(t *testing.T) {
	mock := &llm.MockClient{Response: "  A Study of Gophers  "}
	r := &Renamer{
		Client:           mock,
		SystemPrompt:     "Create a creative title.",
		AdditionalPrompt: "Keep it short.",
		MaxTokens:        50,
	}

	title, err := r.GenerateTitle(context.Background(), "gopher habits in the wild")

	require.NoError(t, err)
	assert.Equal(t, "A Study of Gophers", title)
	assert.Equal(t, "Create a creative title. Additional instructions: Keep it short.", mock.LastSystem)
	assert.Contains(t, mock.LastUser, "gopher habits in the wild")
	assert.Equal(t, 50, mock.LastTokens)
}

func TestProposedNameSanitizesTitle(t *testing.T) {
	mock := &llm.MockClient{Response: "Report: 2023/2024"}
	r := &Renamer{Client: mock, MaxTokens: 50}

	name, err := r.proposedName(context.Background(), "content")

	require.NoError(t, err)
	assert.Equal(t, "Report - 2023 - 2024.pdf", name)
}

func TestProposedNameFormatTemplate(t *testing.T) {
	mock := &llm.MockClient{Response: `Here you go: {"Title": "My Invoice", "Year": "2024"}`}
	r := &Renamer{
		Client:    mock,
		MaxTokens: 50,
		Format:    "{{.Year}} - {{.Title | lower}}.pdf",
	}

	name, err := r.proposedName(context.Background(), "invoice content")

	require.NoError(t, err)
	assert.Equal(t, "2024 - my invoice.pdf", name)
	assert.Contains(t, mock.LastSystem, "JSON object")
}

func TestRenameMovesFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "old.pdf")

	r := &Renamer{}
	require.NoError(t, r.Rename(src, "new.pdf"))

	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(dir, "new.pdf"))
}

func TestRenameDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "old.pdf")

	r := &Renamer{DryRun: true}
	require.NoError(t, r.Rename(src, "new.pdf"))

	assert.FileExists(t, src)
	assert.NoFileExists(t, filepath.Join(dir, "new.pdf"))
}

func TestRenameConflictSkip(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "old.pdf")
	writeFile(t, dir, "taken.pdf")

	resolver := &scriptedResolver{resolution: Resolution{Action: ConflictSkip}}
	r := &Renamer{Conflicts: resolver}

	require.NoError(t, r.Rename(src, "taken.pdf"))

	assert.Equal(t, 1, resolver.calls)
	assert.FileExists(t, src)
}

func TestRenameConflictOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "old.pdf")
	dst := writeFile(t, dir, "taken.pdf")

	r := &Renamer{Conflicts: &scriptedResolver{resolution: Resolution{Action: ConflictOverwrite}}}

	require.NoError(t, r.Rename(src, "taken.pdf"))

	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

func TestRenameConflictQuit(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "old.pdf")
	writeFile(t, dir, "taken.pdf")

	r := &Renamer{Conflicts: &scriptedResolver{resolution: Resolution{Action: ConflictQuit}}}

	assert.ErrorIs(t, r.Rename(src, "taken.pdf"), ErrQuit)
	assert.FileExists(t, src)
}

func TestTerminalResolverChoices(t *testing.T) {
	tests := []struct {
		input string
		want  ConflictAction
	}{
		{"s\n", ConflictSkip},
		{"e\n", ConflictOverwrite},
		{"d\n", ConflictDeleteSource},
		{"q\n", ConflictQuit},
		{"x\ns\n", ConflictSkip}, // invalid choice re-prompts
	}

	for _, tt := range tests {
		resolver := &TerminalResolver{In: strings.NewReader(tt.input), Out: &strings.Builder{}}

		res, err := resolver.Resolve("a.pdf", "b.pdf")

		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Action, "input %q", tt.input)
	}
}

func TestTerminalResolverRename(t *testing.T) {
	resolver := &TerminalResolver{In: strings.NewReader("r\nbetter.pdf\n"), Out: &strings.Builder{}}

	res, err := resolver.Resolve("a.pdf", "b.pdf")

	require.NoError(t, err)
	assert.Equal(t, ConflictRename, res.Action)
	assert.Equal(t, "better.pdf", res.NewName)
}

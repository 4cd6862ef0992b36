package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	log "github.com/sirupsen/logrus"

	"docsift/internal/core/common"
	"docsift/internal/core/snippet"
	"docsift/internal/llm"
)

// Renamer generates a descriptive title for each PDF and renames the file
// accordingly. Files are processed sequentially with a throttle between
// requests; this path makes one completion call per document.
type Renamer struct {
	Client    llm.Client
	Extractor *snippet.Extractor

	SystemPrompt     string
	AdditionalPrompt string
	MaxTokens        int

	// Format, when set, is a Go template (sprig functions available) whose
	// fields the model fills in as a JSON object, e.g. "{{.Title}}.pdf".
	// When empty the model's title is sanitized and ".pdf" appended.
	Format string

	DryRun    bool
	Sleep     time.Duration
	Conflicts ConflictResolver
}

// ProcessAll renames every PDF matched by pattern. Extraction failures skip
// the file; completion failures abort the run (they would hit every
// remaining file too).
func (r *Renamer) ProcessAll(ctx context.Context, pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	var paths []string
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".pdf") {
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		log.Warnf("No PDF files match %q", pattern)
		return nil
	}

	for i, path := range paths {
		log.Infof("Processing file: %s (%d/%d)", path, i+1, len(paths))

		snippets, err := r.Extractor.Pages(path)
		if err != nil {
			log.WithError(err).Warnf("Skipping file %s due to extraction errors", path)
			continue
		}
		content := strings.Join(snippets, "\n")

		newName, err := r.proposedName(ctx, content)
		if err != nil {
			return fmt.Errorf("title generation failed for %s: %w", path, err)
		}

		if err := r.Rename(path, newName); err != nil {
			return err
		}

		if r.Sleep > 0 && i < len(paths)-1 {
			time.Sleep(r.Sleep)
		}
	}
	return nil
}

func (r *Renamer) proposedName(ctx context.Context, content string) (string, error) {
	if r.Format != "" {
		return r.formatName(ctx, content)
	}

	title, err := r.GenerateTitle(ctx, content)
	if err != nil {
		return "", err
	}
	sanitized := SanitizeFilename(title)
	if sanitized == "" {
		return "", fmt.Errorf("model returned no usable title")
	}
	return sanitized + ".pdf", nil
}

// GenerateTitle asks the model for a descriptive title of the content.
func (r *Renamer) GenerateTitle(ctx context.Context, content string) (string, error) {
	system := r.SystemPrompt
	if r.AdditionalPrompt != "" {
		system += " Additional instructions: " + r.AdditionalPrompt
	}
	user := "Extracted content:\n" + content

	log.Debugf("System prompt: %s", system)

	title, err := r.Client.Complete(ctx, system, user, r.MaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(title), nil
}

// formatName has the model return the template's fields as a JSON object of
// string values, then executes the template over them.
func (r *Renamer) formatName(ctx context.Context, content string) (string, error) {
	tmpl, err := template.New("filename").Funcs(sprig.FuncMap()).Parse(r.Format)
	if err != nil {
		return "", fmt.Errorf("invalid filename format %q: %w", r.Format, err)
	}

	system := fmt.Sprintf(
		"Extract information from the document below to fill the file name template %q (Go text/template syntax). "+
			"Respond with a JSON object of string key-value pairs, one per template field, keys cased exactly as in the template. "+
			"No extra explanation.", r.Format)
	if r.AdditionalPrompt != "" {
		system += " Additional instructions: " + r.AdditionalPrompt
	}

	response, err := r.Client.Complete(ctx, system, content, r.MaxTokens)
	if err != nil {
		return "", err
	}

	values, err := common.ParseJSON[map[string]string](response)
	if err != nil {
		return "", fmt.Errorf("failed to parse template fields: %w", err)
	}

	var name strings.Builder
	if err := tmpl.Execute(&name, values); err != nil {
		return "", fmt.Errorf("failed to execute filename format: %w", err)
	}
	return name.String(), nil
}

// Rename moves path to newName inside the same directory, running target
// collisions through the configured ConflictResolver.
func (r *Renamer) Rename(path, newName string) error {
	dir := filepath.Dir(path)
	newPath := filepath.Join(dir, newName)

	if newPath == path {
		log.Infof("File %s already has the generated name", path)
		return nil
	}

	if r.DryRun {
		log.Infof("[DRY MODE] Would rename file %s to %s", filepath.Base(path), newName)
		return nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return r.resolveConflict(path, newPath)
	}

	if err := os.Rename(path, newPath); err != nil {
		log.WithError(err).Errorf("Failed to rename file %s to %s", filepath.Base(path), newName)
		return nil
	}
	log.Infof("File %s renamed to %s", filepath.Base(path), newName)
	return nil
}

func (r *Renamer) resolveConflict(src, dst string) error {
	if r.Conflicts == nil {
		log.Warnf("Target %s already exists, skipping %s", dst, src)
		return nil
	}

	res, err := r.Conflicts.Resolve(src, dst)
	if err != nil {
		return err
	}

	switch res.Action {
	case ConflictSkip:
		log.Infof("Skipping %s", src)
		return nil
	case ConflictQuit:
		return ErrQuit
	case ConflictRename:
		newPath := filepath.Join(filepath.Dir(src), res.NewName)
		if err := os.Rename(src, newPath); err != nil {
			log.WithError(err).Errorf("Failed to rename file %s", src)
			return nil
		}
		log.Infof("File %s renamed to %s", filepath.Base(src), res.NewName)
		return nil
	case ConflictOverwrite:
		if err := os.Remove(dst); err != nil {
			log.WithError(err).Errorf("Failed to erase existing file %s", dst)
			return nil
		}
		if err := os.Rename(src, dst); err != nil {
			log.WithError(err).Errorf("Failed to rename file %s", src)
			return nil
		}
		log.Infof("File %s replaced %s", filepath.Base(src), filepath.Base(dst))
		return nil
	case ConflictDeleteSource:
		if err := os.Remove(src); err != nil {
			log.WithError(err).Errorf("Failed to delete file %s", src)
		} else {
			log.Infof("Deleted file: %s", src)
		}
		return nil
	default:
		return fmt.Errorf("unknown conflict action %d", res.Action)
	}
}

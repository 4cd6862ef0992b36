package snippet

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	log "github.com/sirupsen/logrus"
)

// Extractor turns the lead content of a PDF into bounded text snippets.
// The primary engine is ledongthuc/pdf; files it cannot decode fall back
// to MuPDF, mirroring unreliable real-world PDF tooling. The engine funcs
// are fields so tests can substitute them without fixture files.
type Extractor struct {
	Policy Policy

	firstPrimary  func(path string) (string, error)
	firstFallback func(path string) (string, error)
	pagesPrimary  func(path string) ([]string, error)
	pagesFallback func(path string) ([]string, error)
}

func NewExtractor(policy Policy) *Extractor {
	return &Extractor{
		Policy:        policy,
		firstPrimary:  firstPageText,
		firstFallback: func(path string) (string, error) { return fitzPageText(path, 0) },
		pagesPrimary:  pageTexts,
		pagesFallback: fitzPageTexts,
	}
}

// FirstPage returns the snippet of the document's first page only. Duplicate
// detection reads nothing past page one to keep token cost flat per file.
func (e *Extractor) FirstPage(path string) (string, error) {
	text, err := e.firstPrimary(path)
	if err != nil {
		log.WithError(err).Debugf("primary extraction failed for %s, falling back to MuPDF", path)
		text, err = e.firstFallback(path)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}
	return e.Policy.Apply(text), nil
}

// Pages returns one snippet per page, used by the renaming flow where more
// than the lead page may carry the title-worthy content. The whole file is
// retried on the fallback engine when the primary cannot decode it.
func (e *Extractor) Pages(path string) ([]string, error) {
	texts, err := e.pagesPrimary(path)
	if err != nil {
		log.WithError(err).Debugf("primary extraction failed for %s, falling back to MuPDF", path)
		texts, err = e.pagesFallback(path)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	var snippets []string
	for _, text := range texts {
		if s := e.Policy.Apply(text); s != "" {
			snippets = append(snippets, s)
		}
	}
	if len(snippets) == 0 {
		return nil, fmt.Errorf("no text extracted from %s", path)
	}
	return snippets, nil
}

// firstPageText reads page 1 with ledongthuc/pdf. The library panics on some
// malformed cross-reference tables, so the panic is converted to an error
// here rather than letting it escape the worker pool.
func firstPageText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("document has no pages")
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("first page is empty or undecodable")
	}

	return page.GetPlainText(nil)
}

// pageTexts reads every page with ledongthuc/pdf. Any per-page decode error
// fails the whole file so the caller can retry it on the fallback engine.
func pageTexts(path string) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts, err = nil, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func fitzPageText(path string, pageIndex int) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	if doc.NumPage() <= pageIndex {
		return "", fmt.Errorf("document has no page %d", pageIndex)
	}

	return doc.Text(pageIndex)
}

func fitzPageTexts(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var texts []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			log.WithError(err).Warnf("failed to extract text from page %d of %s", i, path)
			continue
		}
		texts = append(texts, text)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no readable pages")
	}
	return texts, nil
}

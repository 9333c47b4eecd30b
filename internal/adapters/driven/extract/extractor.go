package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ProfileExtractor = (*Extractor)(nil)

// Default selectors for the profile page layout.
const (
	DefaultNameSelector     = "h1.name"
	DefaultLocationSelector = "div.location"
)

// Config holds the CSS selectors used for extraction.
type Config struct {
	// NameSelector locates the display name (default: h1.name).
	NameSelector string

	// LocationSelector locates the location (default: div.location).
	LocationSelector string
}

// Extractor reads profile fields from HTML.
type Extractor struct {
	nameSelector     string
	locationSelector string
}

// New creates a new extractor.
func New(cfg Config) *Extractor {
	if cfg.NameSelector == "" {
		cfg.NameSelector = DefaultNameSelector
	}
	if cfg.LocationSelector == "" {
		cfg.LocationSelector = DefaultLocationSelector
	}
	return &Extractor{
		nameSelector:     cfg.NameSelector,
		locationSelector: cfg.LocationSelector,
	}
}

// Extract parses page.Body, decoding it according to the page's declared
// charset, and returns the first match of each selector. An empty body is an
// empty document: both fields get their placeholders.
func (e *Extractor) Extract(_ context.Context, page *driven.Page) (domain.Profile, error) {
	if page == nil {
		return domain.Profile{}, domain.ErrInvalidInput
	}
	if len(page.Body) == 0 {
		return domain.Profile{
			DisplayName: domain.PlaceholderDisplayName,
			Location:    domain.PlaceholderLocation,
		}, nil
	}

	r, err := charset.NewReader(bytes.NewReader(page.Body), page.ContentType)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: decode charset: %w", domain.ErrUnparseableDocument, err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: parse html: %w", domain.ErrUnparseableDocument, err)
	}

	return domain.Profile{
		DisplayName: firstText(doc, e.nameSelector, domain.PlaceholderDisplayName),
		Location:    firstText(doc, e.locationSelector, domain.PlaceholderLocation),
	}, nil
}

// firstText returns the untrimmed text of the first match, or placeholder.
func firstText(doc *goquery.Document, selector, placeholder string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return placeholder
	}
	return sel.Text()
}

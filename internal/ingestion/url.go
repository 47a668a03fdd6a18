// Package ingestion turns job posting URLs into plain text for analysis.
package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/skillgap-coach/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no readable text is found.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// Posting is a job posting extracted from a web page.
type Posting struct {
	URL   string
	Title string
	Text  string
}

// FromURL fetches a job posting page and extracts its readable text.
func FromURL(ctx context.Context, urlStr string) (*Posting, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: page contains no readable text", ErrContentExtractionFailed)
	}

	return &Posting{
		URL:   urlStr,
		Title: fetch.ExtractTitle(result.HTML),
		Text:  text,
	}, nil
}

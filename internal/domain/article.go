package domain

import "time"

// Article is the immutable input to the scoring pipeline. Body may be empty
// when scraping partially failed; the pipeline still produces a full report.
type Article struct {
	Headline    string    `json:"headline"`
	Body        string    `json:"body"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Wire</title>
    <item>
      <title>Council Approves Budget</title>
      <link>http://example.com/budget</link>
      <description>The council voted on Tuesday.</description>
      <pubDate>Tue, 05 Aug 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title></title>
      <link>http://example.com/untitled</link>
    </item>
    <item>
      <title>Storm Warning Issued</title>
      <link>http://example.com/storm</link>
    </item>
  </channel>
</rss>`

func TestFetchMapsEntries(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	t.Cleanup(srv.Close)

	articles, err := NewSource(nil, nil).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// The untitled entry is dropped.
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d: %+v", len(articles), articles)
	}

	first := articles[0]
	if first.Headline != "Council Approves Budget" {
		t.Fatalf("headline = %q", first.Headline)
	}
	if first.Body != "The council voted on Tuesday." {
		t.Fatalf("body = %q", first.Body)
	}
	if first.URL != "http://example.com/budget" {
		t.Fatalf("url = %q", first.URL)
	}
	if first.Source != "Example Wire" {
		t.Fatalf("source = %q", first.Source)
	}
	want := time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Fatalf("published at = %v, want %v", first.PublishedAt, want)
	}

	second := articles[1]
	if second.Body != "" || !second.PublishedAt.IsZero() {
		t.Fatalf("entry without description/date must stay empty: %+v", second)
	}
}

func TestFetchRejectsNonFeedContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	t.Cleanup(srv.Close)

	if _, err := NewSource(nil, nil).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatalf("non-feed content must error")
	}
}

func TestFetchPropagatesHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	if _, err := NewSource(nil, nil).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatalf("404 must error")
	}
}

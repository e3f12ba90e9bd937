package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"MediaScorer/internal/domain"
)

type stubService struct {
	report     domain.CompositeReport
	article    domain.Article
	analyzeErr error
	urlErr     error
}

func (s *stubService) Analyze(ctx context.Context, article domain.Article) (domain.CompositeReport, error) {
	if s.analyzeErr != nil {
		return domain.CompositeReport{}, s.analyzeErr
	}
	return s.report, nil
}

func (s *stubService) AnalyzeURL(ctx context.Context, url string) (domain.Article, domain.CompositeReport, error) {
	if s.urlErr != nil {
		return domain.Article{}, domain.CompositeReport{}, s.urlErr
	}
	return s.article, s.report, nil
}

type stubRepository struct {
	reports []domain.StoredReport
	err     error
	limit   int
}

func (r *stubRepository) SaveReport(ctx context.Context, article domain.Article, report domain.CompositeReport) error {
	return nil
}

func (r *stubRepository) RecentReports(ctx context.Context, limit int) ([]domain.StoredReport, error) {
	r.limit = limit
	return r.reports, r.err
}

func testReport() domain.CompositeReport {
	return domain.CompositeReport{
		OverallScore: 72,
		Category:     domain.CategoryLeansLeft,
		SubScores:    map[domain.Signal]domain.SubScore{},
		Explanation:  []string{"bias: leans left (intensity 30/100)"},
	}
}

func doRequest(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeTextRequest(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{report: testReport()}, nil, nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/analyze",
		`{"headline": "Budget Vote", "body": "The council voted."}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Headline string                 `json:"headline"`
		Report   domain.CompositeReport `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Headline != "Budget Vote" {
		t.Fatalf("headline = %q", resp.Headline)
	}
	if resp.Report.OverallScore != 72 || resp.Report.Category != domain.CategoryLeansLeft {
		t.Fatalf("unexpected report: %+v", resp.Report)
	}
}

func TestAnalyzeURLRequest(t *testing.T) {
	t.Parallel()

	service := &stubService{
		report:  testReport(),
		article: domain.Article{Headline: "Scraped", Body: "text", URL: "http://example.com/a"},
	}
	srv := NewServer(service, nil, nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/analyze", `{"url": "http://example.com/a"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		URL      string `json:"url"`
		Headline string `json:"headline"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.URL != "http://example.com/a" || resp.Headline != "Scraped" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAnalyzeRequestValidation(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{report: testReport()}, nil, nil)

	cases := []struct {
		name string
		body string
	}{
		{"both forms", `{"url": "http://example.com", "body": "text"}`},
		{"neither form", `{}`},
		{"invalid json", `{not json`},
	}
	for _, tc := range cases {
		rec := doRequest(t, srv, http.MethodPost, "/api/analyze", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestAnalyzeURLFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{urlErr: fmt.Errorf("connection refused")}, nil, nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/analyze", `{"url": "http://example.com/a"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestAnalyzeInternalFailure(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{analyzeErr: fmt.Errorf("policy broken")}, nil, nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/analyze", `{"body": "text"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestReportsWithoutRepository(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{}, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/reports", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestReportsList(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{reports: []domain.StoredReport{{
		URL:          "http://example.com/a",
		Headline:     "Budget Vote",
		OverallScore: 72,
		Category:     domain.CategoryLeansLeft,
		CreatedAt:    time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC),
	}}}
	srv := NewServer(&stubService{}, repo, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/reports?limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if repo.limit != 5 {
		t.Fatalf("limit passed to repository = %d, want 5", repo.limit)
	}

	var got []domain.StoredReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].URL != "http://example.com/a" {
		t.Fatalf("unexpected reports: %+v", got)
	}
}

func TestReportsEmptyListIsJSONArray(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{}, &stubRepository{}, nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/reports", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list must encode as [], got %s", rec.Body.String())
	}
}

func TestReportsLimitValidation(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{}, &stubRepository{}, nil)
	for _, raw := range []string{"0", "-1", "201", "abc"} {
		rec := doRequest(t, srv, http.MethodGet, "/api/reports?limit="+raw, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("limit=%s: status = %d, want 400", raw, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{}, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := NewServer(&stubService{}, nil, nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/analyze", "")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

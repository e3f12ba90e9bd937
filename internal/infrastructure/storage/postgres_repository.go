package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/ports"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository persists composite reports into Postgres, one row per
// analyzed URL, newest analysis winning.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.ReportRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SaveReport upserts the report snapshot. Sub-scores are stored as JSONB so
// the per-signal breakdown survives without a table per analyzer.
func (r *PostgresRepository) SaveReport(ctx context.Context, article domain.Article, report domain.CompositeReport) error {
	if r.db == nil {
		return nil
	}
	if article.URL == "" {
		return fmt.Errorf("save report: article has no url")
	}

	subScores, err := json.Marshal(report.SubScores)
	if err != nil {
		return fmt.Errorf("marshal sub-scores: %w", err)
	}

	query, args, err := psql.Insert("analysis_reports").
		Columns("url", "headline", "source", "overall_score", "category", "sub_scores", "explanation").
		Values(article.URL, article.Headline, article.Source, report.OverallScore, string(report.Category), subScores, pq.Array(report.Explanation)).
		Suffix(`ON CONFLICT (url) DO UPDATE
            SET headline = EXCLUDED.headline,
                source = EXCLUDED.source,
                overall_score = EXCLUDED.overall_score,
                category = EXCLUDED.category,
                sub_scores = EXCLUDED.sub_scores,
                explanation = EXCLUDED.explanation,
                updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert report: %w", err)
	}

	return nil
}

// RecentReports returns the newest report summaries, most recent first.
func (r *PostgresRepository) RecentReports(ctx context.Context, limit int) ([]domain.StoredReport, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query, args, err := psql.Select("url", "headline", "overall_score", "category", "created_at").
		From("analysis_reports").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.StoredReport
	for rows.Next() {
		var report domain.StoredReport
		if err := rows.Scan(&report.URL, &report.Headline, &report.OverallScore, &report.Category, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return reports, nil
}

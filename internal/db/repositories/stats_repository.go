package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// StatsRepository runs the grouped aggregate queries behind the stats
// summary page. It rides the sqlx connection rather than GORM; plain
// SQL reads better for GROUP BY counters.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type countRow struct {
	Key   string `db:"key"`
	Count int64  `db:"count"`
}

// TotalContacts returns the contact row count.
func (r *StatsRepository) TotalContacts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(id) FROM contacts`); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return total, nil
}

// ModeCounts returns contacts grouped by mode.
func (r *StatsRepository) ModeCounts(ctx context.Context) (map[string]int64, error) {
	return r.grouped(ctx, `SELECT mode AS key, COUNT(id) AS count FROM contacts GROUP BY mode`)
}

// FrequencyCounts returns contacts grouped by raw frequency string.
func (r *StatsRepository) FrequencyCounts(ctx context.Context) (map[string]int64, error) {
	return r.grouped(ctx, `SELECT frequency AS key, COUNT(id) AS count FROM contacts GROUP BY frequency`)
}

// OperatorCounts returns contacts grouped by operator callsign,
// skipping rows without one.
func (r *StatsRepository) OperatorCounts(ctx context.Context) (map[string]int64, error) {
	return r.grouped(ctx, `SELECT operator_callsign AS key, COUNT(id) AS count FROM contacts
		WHERE operator_callsign IS NOT NULL AND operator_callsign != '' GROUP BY operator_callsign`)
}

func (r *StatsRepository) grouped(ctx context.Context, query string) (map[string]int64, error) {
	var rows []countRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to run grouped count: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

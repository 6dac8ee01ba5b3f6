package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pribylovaa/go-news-etl/internal/models"
)

// SaveRunStats фиксирует строку статистики прогона.
// Per-stage длительности сериализуются в jsonb (миллисекунды).
func (s *Storage) SaveRunStats(ctx context.Context, stats *models.RunStats) error {
	const op = "storage/postgres/SaveRunStats"

	durations := make(map[string]int64, len(stats.StageDurations))
	for stage, d := range stats.StageDurations {
		durations[stage] = d.Milliseconds()
	}

	payload, err := json.Marshal(durations)
	if err != nil {
		return fmt.Errorf("%s: marshal durations: %w", op, err)
	}

	_, err = s.db.Exec(ctx, `
	INSERT INTO runs (run_id, started_at, finished_at,
		raw_count, extracted_count, duplicates_dropped, rejected_count,
		accepted_count, write_failures, stage_durations_ms)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (run_id) DO NOTHING
	`, stats.RunID, stats.StartedAt.UTC(), stats.FinishedAt.UTC(),
		stats.Counts.Raw, stats.Counts.Extracted, stats.Counts.DuplicatesDropped,
		stats.Counts.Rejected, stats.Counts.Accepted, stats.Counts.WriteFailures,
		payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

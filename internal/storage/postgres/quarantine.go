package postgres

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-news-etl/internal/models"
)

// SaveRejected кладёт отбракованную запись в карантин.
//
// Upsert по отпечатку: повторная отбраковка того же контента обновляет
// причину и диагностику, дубля не создаёт. Карантин хранит канонические
// поля плюс rejection_reason, extraction_degraded и диагностический след.
func (s *Storage) SaveRejected(ctx context.Context, rec *models.RejectedArticle) error {
	const op = "storage/postgres/SaveRejected"

	article := rec.Article

	_, err := s.db.Exec(ctx, `
	INSERT INTO quarantine (id, source_id, fingerprint, url, title, text,
		published_at, lang, label, label_source, license,
		title_length, text_length, num_images, has_image,
		rejection_reason, extraction_degraded, diagnostic_trail, rejected_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	ON CONFLICT (fingerprint) DO UPDATE
	SET
	url = EXCLUDED.url,
	title = EXCLUDED.title,
	text = EXCLUDED.text,
	published_at = EXCLUDED.published_at,
	lang = EXCLUDED.lang,
	label = EXCLUDED.label,
	label_source = EXCLUDED.label_source,
	license = EXCLUDED.license,
	title_length = EXCLUDED.title_length,
	text_length = EXCLUDED.text_length,
	num_images = EXCLUDED.num_images,
	has_image = EXCLUDED.has_image,
	rejection_reason = EXCLUDED.rejection_reason,
	extraction_degraded = EXCLUDED.extraction_degraded,
	diagnostic_trail = EXCLUDED.diagnostic_trail,
	rejected_at = EXCLUDED.rejected_at
	`, article.ID, nullableUUID(article.SourceID), article.Fingerprint, article.URL,
		article.Title, article.Text, nullableTime(article.PublishedAt),
		article.Lang, article.Label, article.LabelSource, article.License,
		article.TitleLength, article.TextLength, article.NumImages, article.HasImage,
		rec.Reason, rec.ExtractionDegraded, rec.Trail, rec.RejectedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

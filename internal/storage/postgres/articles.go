package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/storage"
)

// nullableTime — нулевое время хранится как NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// SaveArticle фиксирует принятую запись с изображениями и метаданными
// в одной транзакции.
//
// Политика записи:
//   - upsert по отпечатку: повторная фиксация того же контента —
//     перезапись строки, не дубль;
//   - ingested_at не обновляется — остаётся время первой фиксации;
//   - изображения и метаданные перезаписываются целиком (их состав
//     мог измениться после пробы достижимости).
func (s *Storage) SaveArticle(ctx context.Context, article *models.Article, meta []models.Metadata) error {
	const op = "storage/postgres/SaveArticle"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
	INSERT INTO articles (id, source_id, fingerprint, url, title, text,
		published_at, lang, label, label_source, license,
		title_length, text_length, num_images, has_image, ingested_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (fingerprint) DO UPDATE
	SET
	source_id = EXCLUDED.source_id,
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
	has_image = EXCLUDED.has_image
	`, article.ID, nullableUUID(article.SourceID), article.Fingerprint, article.URL,
		article.Title, article.Text, nullableTime(article.PublishedAt),
		article.Lang, article.Label, article.LabelSource, article.License,
		article.TitleLength, article.TextLength, article.NumImages,
		article.HasImage, article.IngestedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: upsert article: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_images WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("%s: clear images: %w", op, err)
	}

	for i, img := range article.Images {
		_, err := tx.Exec(ctx, `
		INSERT INTO article_images (id, article_id, position, image_url, image_object)
		VALUES ($1, $2, $3, $4, $5)
		`, img.ID, article.ID, i, img.ImageURL, img.ImageObject)
		if err != nil {
			return fmt.Errorf("%s: insert image %d: %w", op, i, err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_metadata WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("%s: clear metadata: %w", op, err)
	}

	for i, m := range meta {
		_, err := tx.Exec(ctx, `
		INSERT INTO article_metadata (id, article_id, key, value)
		VALUES ($1, $2, $3, $4)
		`, m.ID, article.ID, m.Key, m.Value)
		if err != nil {
			return fmt.Errorf("%s: insert metadata %d: %w", op, i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// ArticleByFingerprint возвращает запись по отпечатку контента.
// Если записи нет — storage.ErrNotFound.
func (s *Storage) ArticleByFingerprint(ctx context.Context, fingerprint string) (*models.Article, error) {
	const op = "storage/postgres/ArticleByFingerprint"

	var article models.Article
	var sourceID *uuid.UUID
	var published *time.Time
	err := s.db.QueryRow(ctx, `
	SELECT id, source_id, fingerprint, url, title, text,
		published_at, lang, label, label_source, license,
		title_length, text_length, num_images, has_image, ingested_at
	FROM articles
	WHERE fingerprint = $1
	`, fingerprint).Scan(
		&article.ID,
		&sourceID,
		&article.Fingerprint,
		&article.URL,
		&article.Title,
		&article.Text,
		&published,
		&article.Lang,
		&article.Label,
		&article.LabelSource,
		&article.License,
		&article.TitleLength,
		&article.TextLength,
		&article.NumImages,
		&article.HasImage,
		&article.IngestedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if sourceID != nil {
		article.SourceID = *sourceID
	}
	if published != nil {
		article.PublishedAt = published.UTC()
	}
	article.IngestedAt = article.IngestedAt.UTC()

	rows, err := s.db.Query(ctx, `
	SELECT id, article_id, image_url, image_object
	FROM article_images
	WHERE article_id = $1
	ORDER BY position
	`, article.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: images: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.Image
		if scanErr := rows.Scan(&img.ID, &img.ArticleID, &img.ImageURL, &img.ImageObject); scanErr != nil {
			return nil, fmt.Errorf("%s: scan image: %w", op, scanErr)
		}
		article.Images = append(article.Images, img)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return &article, nil
}

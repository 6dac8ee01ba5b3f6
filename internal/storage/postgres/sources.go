package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/models"
)

// EnsureSource возвращает источник по имени, создавая его при отсутствии.
//
// Справочные данные неизменяемы: при конфликте по имени существующая
// строка не перезаписывается, обновляется лишь пустой url.
func (s *Storage) EnsureSource(ctx context.Context, name, url string) (*models.Source, error) {
	const op = "storage/postgres/EnsureSource"

	var src models.Source
	err := s.db.QueryRow(ctx, `
	INSERT INTO sources (id, name, url)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET url = CASE WHEN sources.url = '' THEN EXCLUDED.url ELSE sources.url END
	RETURNING id, name, url, created_at
	`, uuid.New(), name, url).Scan(&src.ID, &src.Name, &src.URL, &src.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	src.CreatedAt = src.CreatedAt.UTC()

	return &src, nil
}

// nullableUUID — нулевой UUID хранится как NULL.
func nullableUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

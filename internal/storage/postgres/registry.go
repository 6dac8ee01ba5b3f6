package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-news-etl/internal/storage"
)

// Реестр отпечатков — персистентное состояние дедупликации, скоупленное
// на весь датасет. Любая ошибка здесь оборачивает
// storage.ErrRegistryUnavailable: прогон без истории обязан прерваться,
// а не рисковать дублями.

// Contains сообщает, зарегистрирован ли отпечаток, и возвращает
// идентификатор первой увиденной записи.
func (s *Storage) Contains(ctx context.Context, fingerprint string) (uuid.UUID, bool, error) {
	const op = "storage/postgres/Contains"

	var id uuid.UUID
	err := s.db.QueryRow(ctx, `
	SELECT article_id FROM fingerprints WHERE fingerprint = $1
	`, fingerprint).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("%s: %w: %w", op, storage.ErrRegistryUnavailable, err)
	}

	return id, true, nil
}

// Register связывает отпечаток с идентификатором записи.
// Повторная регистрация того же отпечатка — no-op: первый увиденный
// идентификатор сохраняется (tie-break «первый выигрывает»).
func (s *Storage) Register(ctx context.Context, fingerprint string, id uuid.UUID) error {
	const op = "storage/postgres/Register"

	_, err := s.db.Exec(ctx, `
	INSERT INTO fingerprints (fingerprint, article_id)
	VALUES ($1, $2)
	ON CONFLICT (fingerprint) DO NOTHING
	`, fingerprint, id)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, storage.ErrRegistryUnavailable, err)
	}

	return nil
}

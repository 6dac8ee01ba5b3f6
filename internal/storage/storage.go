// storage определяет контракты доступа к хранилищам etl-сервиса:
// табличному (канонический датасет, карантин, реестр отпечатков,
// справочник источников, статистика прогонов) и blob-хранилищу
// (сырые объекты коллекторов и стадийные объекты пайплайна).
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности, если политика не upsert.
	ErrConflict = errors.New("conflict")
	// ErrRegistryUnavailable — реестр отпечатков недоступен или
	// нечитаем. Фатально для прогона: без истории корректность
	// дедупликации не гарантируется.
	ErrRegistryUnavailable = errors.New("fingerprint registry unavailable")
)

// ArticleStorage описывает операции над каноническим датасетом.
type ArticleStorage interface {
	// SaveArticle фиксирует принятую запись с метаданными: upsert по
	// отпечатку (повторная запись — перезапись, не дубль), ingested_at
	// первой фиксации сохраняется навсегда.
	SaveArticle(ctx context.Context, article *models.Article, meta []models.Metadata) error
	// ArticleByFingerprint возвращает запись по отпечатку.
	// Если записи нет — ErrNotFound.
	ArticleByFingerprint(ctx context.Context, fingerprint string) (*models.Article, error)
}

// QuarantineStorage описывает карантинный сток отбракованных записей.
type QuarantineStorage interface {
	// SaveRejected кладёт отбракованную запись в карантин: upsert по
	// отпечатку, с кодом причины и диагностическим следом.
	SaveRejected(ctx context.Context, rec *models.RejectedArticle) error
}

// RegistryStorage — персистентный реестр отпечатков
// (см. pipeline.Registry). Любая ошибка реализации должна оборачивать
// ErrRegistryUnavailable.
type RegistryStorage interface {
	Contains(ctx context.Context, fingerprint string) (uuid.UUID, bool, error)
	Register(ctx context.Context, fingerprint string, id uuid.UUID) error
}

// SourceStorage описывает справочник источников.
type SourceStorage interface {
	// EnsureSource возвращает источник по имени, создавая его при
	// отсутствии (insert-if-absent).
	EnsureSource(ctx context.Context, name, url string) (*models.Source, error)
}

// RunStorage описывает журнал статистики прогонов.
type RunStorage interface {
	SaveRunStats(ctx context.Context, stats *models.RunStats) error
}

// Storage задаёт контракт табличного хранилища etl-сервиса.
type Storage interface {
	ArticleStorage
	QuarantineStorage
	RegistryStorage
	SourceStorage
	RunStorage
	Close()
}

// BlobStorage задаёт контракт blob-хранилища. Объекты адресуются
// стадией и отпечатком контента, что даёт идемпотентную перезапись.
type BlobStorage interface {
	// PutRecord пишет стадийный объект записи (stage — transform или
	// quarantine) по ключу <fingerprint>.json.
	PutRecord(ctx context.Context, stage, fingerprint string, data []byte) error
	// PutRunStats пишет статистику прогона по ключу <run_id>.json.
	PutRunStats(ctx context.Context, runID string, data []byte) error
}

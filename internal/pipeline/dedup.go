package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Registry — контракт реестра отпечатков, скоупленного на весь
// персистентный датасет (не только на текущий прогон).
//
// Реализация живёт в табличном хранилище; стадии пайплайна никогда не
// обращаются к персистентной истории неявно — только через этот контракт.
type Registry interface {
	// Contains сообщает, зарегистрирован ли отпечаток, и возвращает
	// идентификатор первой увиденной записи.
	Contains(ctx context.Context, fingerprint string) (uuid.UUID, bool, error)
	// Register связывает отпечаток с идентификатором записи.
	// Вызывается после успешной фиксации записи в каноническом датасете:
	// отбракованные и недозаписанные записи не регистрируются и потому
	// переоцениваются следующим прогоном.
	Register(ctx context.Context, fingerprint string, id uuid.UUID) error
}

// Deduplicator — единственная stateful-компонента пайплайна.
// Сверяет отпечатки с реестром и с внутрипрогонной надстройкой seen;
// доступ к нему сериализован (однопоточная фаза свёртки), что сохраняет
// tie-break «первый по стабильному порядку входа выигрывает».
type Deduplicator struct {
	registry Registry
	seen     map[string]uuid.UUID
}

// NewDeduplicator создаёт дедупликатор поверх реестра отпечатков.
func NewDeduplicator(registry Registry) *Deduplicator {
	return &Deduplicator{
		registry: registry,
		seen:     make(map[string]uuid.UUID),
	}
}

// Check решает судьбу записи по отпечатку:
//   - отпечаток уже встречался в этом прогоне — дубль, выигрывает
//     первое вхождение по порядку входа;
//   - отпечаток в реестре (прошлые прогоны) — дубль ранее принятой записи;
//   - иначе запись проходит дальше и помечается увиденной в прогоне.
//
// Ошибка реестра фатальна для прогона: без истории корректность
// дедупликации не гарантируется, и прогон обязан прерваться, а не
// рисковать дублями в каноническом датасете.
func (d *Deduplicator) Check(ctx context.Context, rec *Record) (bool, error) {
	const op = "pipeline/dedup/Check"

	fp := rec.Article.Fingerprint

	if firstID, ok := d.seen[fp]; ok {
		rec.State = StateDroppedDuplicate
		rec.DuplicateOf = firstID
		rec.Note("dedup: duplicate within run of %s", firstID)
		return true, nil
	}

	firstID, ok, err := d.registry.Contains(ctx, fp)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if ok {
		rec.State = StateDroppedDuplicate
		rec.DuplicateOf = firstID
		rec.Note("dedup: duplicate of previously accepted %s", firstID)
		return true, nil
	}

	d.seen[fp] = rec.Article.ID

	return false, nil
}

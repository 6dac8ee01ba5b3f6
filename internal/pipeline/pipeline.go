// pipeline реализует transform-ядро: чистые стадии обработки записи
// (экстракция, нормализация, признаки, валидация) и дедупликацию поверх
// реестра отпечатков.
//
// Стадии работают над Record — черновиком записи с накопленной
// диагностикой. Жизненный цикл записи в рамках прогона:
//
//	RAW → EXTRACTED → NORMALIZED → (DROPPED_DUPLICATE | FEATURED) →
//	(REJECTED | ACCEPTED) → PERSISTED
//
// Терминальные состояния (DROPPED_DUPLICATE, REJECTED, PERSISTED)
// внутри прогона не пересматриваются.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/models"
)

// State — состояние записи в конечном автомате прогона.
type State string

const (
	StateRaw              State = "RAW"
	StateExtracted        State = "EXTRACTED"
	StateNormalized       State = "NORMALIZED"
	StateDroppedDuplicate State = "DROPPED_DUPLICATE"
	StateFeatured         State = "FEATURED"
	StateRejected         State = "REJECTED"
	StateAccepted         State = "ACCEPTED"
	StatePersisted        State = "PERSISTED"
)

// Record — черновик записи, проходящий стадии пайплайна.
//
// Отображаемые поля (Article.Title/Text) сохраняют исходный регистр и
// пунктуацию; HashTitle и NormText — рабочие копии, разрушительно
// нормализованные только для отпечатка и порога длины.
type Record struct {
	// Index — стабильный порядковый номер во входе прогона.
	// Определяет tie-break «первый выигрывает» при внутрипрогонных дублях.
	Index int
	// RawKey — ключ сырого объекта в blob-хранилище (для диагностики).
	RawKey string

	Article models.Article
	Meta    []models.Metadata

	State State

	// SourceName — имя источника из сырого payload'а (до резолва в SourceID).
	SourceName string
	// SourceURL — адрес источника из сырого payload'а.
	SourceURL string

	// HashTitle — нормализованная hash-копия заголовка.
	HashTitle string
	// NormText — нормализованная рабочая копия текста; её длина
	// сверяется с порогом минимального контента.
	NormText string

	// ExtractionDegraded — экстрактор подставлял дефолты.
	ExtractionDegraded bool
	// Defaulted — какие именно поля были подставлены дефолтами.
	Defaulted []string
	// TooShort — текст ниже порога; проставляется нормализатором,
	// отбраковка выполняется валидатором.
	TooShort bool
	// DuplicateOf — ID ранее принятой записи с тем же отпечатком.
	DuplicateOf uuid.UUID
	// Reason — код причины отбраковки (первое нарушенное правило).
	Reason string
	// Trail — диагностический след, накопленный стадиями.
	Trail []string
}

// Note добавляет строку в диагностический след записи.
func (r *Record) Note(format string, args ...any) {
	r.Trail = append(r.Trail, fmt.Sprintf(format, args...))
}

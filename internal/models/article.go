// models содержит доменные сущности etl-сервиса.
// Эти типы используются слоями пайплайна, бизнес-логики и хранилища.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Label — допустимые значения метки достоверности статьи.
//
// Нераспознанные значения нормализуются в LabelUnknown на этапе валидации,
// запись при этом не отбраковывается.
const (
	LabelReal    = "real"
	LabelFake    = "fake"
	LabelUnknown = "unknown"
)

// Source — справочная сущность источника контента.
// Создаётся один раз (insert-if-absent по имени), далее только читается.
type Source struct {
	// ID — уникальный идентификатор источника (UUIDv4).
	ID uuid.UUID
	// Name — каноническое имя источника (ключ справочника).
	Name string
	// URL — адрес источника.
	URL string
	// CreatedAt — время создания записи (UTC).
	CreatedAt time.Time
}

// Article — каноническая запись датасета.
//
// Особенности:
//   - ID детерминирован: UUIDv5 от отпечатка контента, а не счётчик —
//     повторный прогон по тем же данным даёт тот же ID;
//   - Fingerprint — ключ дедупликации и адресации в хранилищах;
//   - IngestedAt выставляется при первой фиксации и далее не перезаписывается;
//   - Временные метки — в UTC.
type Article struct {
	// ID — стабильный идентификатор, производный от Fingerprint.
	ID uuid.UUID
	// SourceID — ссылка на Source.
	SourceID uuid.UUID
	// Fingerprint — hex-отпечаток (canonical URL + нормализованный title).
	Fingerprint string
	// URL — каноническая ссылка на материал.
	URL string
	// Title — заголовок в исходном написании (регистр/пунктуация сохранены).
	Title string
	// Text — полный текст в исходном написании.
	Text string
	// Images — упорядоченный список ссылок на изображения статьи.
	Images []Image
	// PublishedAt — время публикации у источника; нулевое, если неизвестно.
	PublishedAt time.Time
	// Lang — язык материала (как сообщил коллектор).
	Lang string
	// Label — метка достоверности: real/fake/unknown; пустая, если не задана.
	Label string
	// LabelSource — происхождение метки (датасет, разметчик и т.п.).
	LabelSource string
	// License — лицензия материала.
	License string

	// Производные признаки. Никогда не доверяются входу — всегда
	// пересчитываются из текущего состояния записи.
	TitleLength int
	TextLength  int
	NumImages   int
	HasImage    bool

	// IngestedAt — время первой фиксации записи в датасете (UTC).
	IngestedAt time.Time
}

// Image — изображение, принадлежащее ровно одной статье.
// Существование записи означает синтаксически корректный URL;
// достижимость проверяется best-effort и не гарантируется.
type Image struct {
	// ID — уникальный идентификатор изображения.
	ID uuid.UUID
	// ArticleID — ссылка на статью-владельца.
	ArticleID uuid.UUID
	// ImageURL — ссылка на изображение.
	ImageURL string
	// ImageObject — ключ объекта в blob-хранилище, если коллектор
	// зазеркалировал картинку; пустая строка, если нет.
	ImageObject string
}

// Metadata — произвольная пара ключ/значение, привязанная к статье
// (автор, рубрика и прочие источник-специфичные атрибуты).
// Никогда не участвует в валидации.
type Metadata struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	Key       string
	Value     string
}

// RejectedArticle — запись, отправленная в карантин.
// Содержит все канонические поля плюс диагностику отбраковки.
type RejectedArticle struct {
	Article Article
	// Reason — код причины: первое нарушенное правило валидатора.
	Reason string
	// ExtractionDegraded — true, если экстрактор подставлял дефолты.
	ExtractionDegraded bool
	// Trail — накопленный диагностический след всех стадий.
	Trail []string
	// RejectedAt — время отбраковки (UTC).
	RejectedAt time.Time
}

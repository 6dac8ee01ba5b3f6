package models

// RawPayload — сырой объект коллектора: слабо типизированное отображение
// полей, возможно с отсутствующими ключами и некорректными типами.
//
// Любой доступ к полям выполняется только через явные helpers экстрактора
// (default-or-present); наличие ключа никогда не предполагается.
type RawPayload map[string]any

// Известные ключи сырого объекта. Всё, что не входит в этот набор,
// экстрактор складывает в метаданные записи.
const (
	RawKeySourceName  = "source_name"
	RawKeySourceURL   = "source_url"
	RawKeyURL         = "url"
	RawKeyTitle       = "title"
	RawKeyText        = "text"
	RawKeyImageURL    = "image_url"
	RawKeyImageURLs   = "image_urls"
	RawKeyImageObject = "image_object"
	RawKeyPublishedAt = "published_at"
	RawKeyLang        = "lang"
	RawKeyLabel       = "label"
	RawKeyLabelSource = "label_source"
	RawKeyLicense     = "license"
)

package pipeline

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-news-etl/internal/models"
)

// Extract отображает сырой payload в черновик записи.
//
// Контракт:
//   - никогда не возвращает ошибку: отсутствующие и некорректно
//     типизированные поля заменяются явными дефолтами ("" для строк,
//     пустой список для изображений, нулевое время);
//   - каждый подставленный дефолт фиксируется в Defaulted, а сам факт
//     деградации — в ExtractionDegraded (попадёт в диагностику карантина);
//   - неизвестные скалярные ключи складываются в метаданные записи;
//   - побочных эффектов нет (чистое отображение).
func Extract(raw models.RawPayload, index int, rawKey string) *Record {
	rec := &Record{
		Index:  index,
		RawKey: rawKey,
		State:  StateRaw,
	}

	rec.SourceName = stringField(raw, models.RawKeySourceName, rec)
	rec.SourceURL = optionalString(raw, models.RawKeySourceURL)

	rec.Article.URL = stringField(raw, models.RawKeyURL, rec)
	rec.Article.Title = stringField(raw, models.RawKeyTitle, rec)
	rec.Article.Text = stringField(raw, models.RawKeyText, rec)

	rec.Article.Images = imageRefs(raw, rec)
	rec.Article.PublishedAt = timeField(raw, models.RawKeyPublishedAt, rec)

	rec.Article.Lang = optionalString(raw, models.RawKeyLang)
	rec.Article.Label = optionalString(raw, models.RawKeyLabel)
	rec.Article.LabelSource = optionalString(raw, models.RawKeyLabelSource)
	rec.Article.License = optionalString(raw, models.RawKeyLicense)

	rec.Meta = extraMetadata(raw)

	if rec.ExtractionDegraded {
		rec.Note("extract: defaulted fields: %s", strings.Join(rec.Defaulted, ","))
	}

	rec.State = StateExtracted

	return rec
}

// markDefaulted фиксирует подстановку дефолта для поля.
func markDefaulted(rec *Record, field string) {
	rec.Defaulted = append(rec.Defaulted, field)
	rec.ExtractionDegraded = true
}

// stringField — обязательное строковое поле: при отсутствии или
// неверном типе возвращает "" и помечает запись деградировавшей.
func stringField(raw models.RawPayload, key string, rec *Record) string {
	v, ok := raw[key]
	if !ok {
		markDefaulted(rec, key)
		return ""
	}

	s, ok := v.(string)
	if !ok {
		markDefaulted(rec, key)
		return ""
	}

	return strings.TrimSpace(s)
}

// optionalString — необязательное поле: отсутствие — норма,
// неверный тип трактуется как отсутствие.
func optionalString(raw models.RawPayload, key string) string {
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}

	return ""
}

// imageRefs собирает упорядоченный список ссылок на изображения.
// Приоритет: image_urls (список или строка с разделителем ';'),
// затем одиночный image_url (+ image_object, если коллектор
// зазеркалировал картинку).
func imageRefs(raw models.RawPayload, rec *Record) []models.Image {
	var refs []models.Image

	appendRef := func(u, object string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		refs = append(refs, models.Image{ImageURL: u, ImageObject: object})
	}

	if v, ok := raw[models.RawKeyImageURLs]; ok {
		switch urls := v.(type) {
		case []any:
			for _, item := range urls {
				if s, ok := item.(string); ok {
					appendRef(s, "")
				}
			}
		case string:
			for _, s := range strings.Split(urls, ";") {
				appendRef(s, "")
			}
		default:
			markDefaulted(rec, models.RawKeyImageURLs)
		}
	}

	if len(refs) == 0 {
		if u := optionalString(raw, models.RawKeyImageURL); u != "" {
			appendRef(u, optionalString(raw, models.RawKeyImageObject))
		}
	}

	return refs
}

// timeLayouts — набор форматов времени, встречающихся у коллекторов.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timeField — необязательное временное поле; невалидное значение
// заменяется нулевым временем с пометкой деградации.
func timeField(raw models.RawPayload, key string, rec *Record) time.Time {
	v, ok := raw[key]
	if !ok {
		return time.Time{}
	}

	s, ok := v.(string)
	if !ok {
		markDefaulted(rec, key)
		return time.Time{}
	}

	t, err := parseTime(s)
	if err != nil {
		markDefaulted(rec, key)
		rec.Note("extract: unparsable %s: %q", key, s)
		return time.Time{}
	}

	return t
}

// parseTime пробует набор популярных форматов и возвращает UTC-время.
func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	var lastErr error
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}

	return time.Time{}, lastErr
}

// knownKeys — ключи, потребляемые экстрактором напрямую.
var knownKeys = map[string]struct{}{
	models.RawKeySourceName:  {},
	models.RawKeySourceURL:   {},
	models.RawKeyURL:         {},
	models.RawKeyTitle:       {},
	models.RawKeyText:        {},
	models.RawKeyImageURL:    {},
	models.RawKeyImageURLs:   {},
	models.RawKeyImageObject: {},
	models.RawKeyPublishedAt: {},
	models.RawKeyLang:        {},
	models.RawKeyLabel:       {},
	models.RawKeyLabelSource: {},
	models.RawKeyLicense:     {},
}

// extraMetadata складывает неизвестные скалярные ключи payload'а
// в метаданные записи (автор, рубрика и т.п.). Вложенные структуры
// игнорируются — метаданные никогда не участвуют в валидации.
func extraMetadata(raw models.RawPayload) []models.Metadata {
	var meta []models.Metadata

	for key, v := range raw {
		if _, ok := knownKeys[key]; ok {
			continue
		}

		var value string
		switch typed := v.(type) {
		case string:
			value = strings.TrimSpace(typed)
		case bool:
			if typed {
				value = "true"
			} else {
				value = "false"
			}
		case float64:
			value = trimFloat(typed)
		default:
			continue
		}

		if value == "" {
			continue
		}

		meta = append(meta, models.Metadata{Key: key, Value: value})
	}

	// Стабильный порядок независимо от обхода map.
	sort.Slice(meta, func(i, j int) bool { return meta[i].Key < meta[j].Key })

	return meta
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package pipeline

import (
	"context"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-news-etl/internal/models"
)

// Коды причин отбраковки. Записывается первое нарушенное правило.
const (
	ReasonInvalidURL      = "invalid_url"
	ReasonTooShort        = "too_short"
	ReasonInvalidImageRef = "invalid_image_ref"
)

// Validator разбивает записи на принятые и отбракованные по
// упорядоченному набору правил:
//
//  1. URL — абсолютный, со схемой http/https;
//  2. длина нормализованного текста не ниже порога (too_short);
//  3. каждая ссылка на изображение синтаксически валидна; достижимость
//     проверяется best-effort — недостижимая ссылка не отбраковывает
//     запись, а удаляется с пересчётом признаков;
//  4. метка нормализуется к real/fake/unknown; нераспознанное значение —
//     unknown, не отбраковка.
//
// Отбраковка — ожидаемое, рутинное событие: такие записи уходят в
// карантин с кодом причины и накопленной диагностикой, не в error-логи.
type Validator struct {
	minTextLength int
	prober        *Prober
}

// NewValidator создаёт валидатор. prober == nil отключает сетевую пробу
// изображений (синтаксическая проверка выполняется всегда).
func NewValidator(minTextLength int, prober *Prober) *Validator {
	return &Validator{
		minTextLength: minTextLength,
		prober:        prober,
	}
}

// Validate применяет правила к записи. Возвращает true для принятой
// записи; у отбракованной проставлены State и Reason.
func (v *Validator) Validate(ctx context.Context, rec *Record) bool {
	if !validAbsoluteURL(rec.Article.URL) {
		return v.reject(rec, ReasonInvalidURL)
	}

	if rec.TooShort || rec.Article.TextLength < v.minTextLength {
		return v.reject(rec, ReasonTooShort)
	}

	for _, img := range rec.Article.Images {
		if !validAbsoluteURL(img.ImageURL) {
			rec.Note("validate: malformed image ref %q", img.ImageURL)
			return v.reject(rec, ReasonInvalidImageRef)
		}
	}

	if v.prober != nil {
		kept := rec.Article.Images[:0]
		for _, img := range rec.Article.Images {
			if v.prober.Reachable(ctx, img.ImageURL) {
				kept = append(kept, img)
				continue
			}
			rec.Note("validate: unreachable image dropped %q", img.ImageURL)
		}
		rec.Article.Images = kept
		BuildFeatures(rec)
	}

	if rec.Article.Label != "" {
		switch lowered := strings.ToLower(rec.Article.Label); lowered {
		case models.LabelReal, models.LabelFake, models.LabelUnknown:
			rec.Article.Label = lowered
		default:
			rec.Note("validate: unrecognized label %q -> %s", rec.Article.Label, models.LabelUnknown)
			rec.Article.Label = models.LabelUnknown
		}
	}

	rec.State = StateAccepted

	return true
}

func (v *Validator) reject(rec *Record, reason string) bool {
	rec.State = StateRejected
	rec.Reason = reason

	return false
}

// validAbsoluteURL — абсолютный URL со схемой http/https и непустым хостом.
func validAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

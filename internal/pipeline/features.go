package pipeline

import "unicode/utf8"

// BuildFeatures пересчитывает производные признаки записи.
//
// Чистая идемпотентная функция: повторный вызов на уже размеченной
// записи даёт те же значения. Признаки никогда не доверяются входу —
// всегда выводятся из текущего состояния записи. Валидатор вызывает
// её повторно после удаления недостижимых изображений.
func BuildFeatures(rec *Record) {
	rec.Article.TitleLength = utf8.RuneCountInString(rec.Article.Title)
	rec.Article.TextLength = utf8.RuneCountInString(rec.NormText)
	rec.Article.NumImages = len(rec.Article.Images)
	rec.Article.HasImage = rec.Article.NumImages > 0

	if rec.State == StateNormalized {
		rec.State = StateFeatured
	}
}

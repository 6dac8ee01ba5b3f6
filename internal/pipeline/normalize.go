package pipeline

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions — параметры нормализации.
// Порог и deny-list — конфигурационные входы с документированными
// дефолтами (см. config.PipelineConfig), не жёсткие константы.
type NormalizeOptions struct {
	// MinTextLength — минимальная длина нормализованного текста в рунах.
	MinTextLength int
	// TrackingParams — точные имена query-параметров, вырезаемых при
	// канонизации URL (поверх встроенных префиксных правил).
	TrackingParams []string
	// StopWords — стоп-слова, вырезаемые из hash-копии заголовка.
	StopWords []string
}

// Normalize приводит черновик к каноническому виду.
//
// Отображаемые Title/Text сохраняют исходный регистр и пунктуацию —
// у них лишь схлопываются пробельные последовательности. Разрушительная
// нормализация (case-fold, NFKC, вырезание пунктуации и стоп-слов)
// применяется только к рабочим копиям HashTitle/NormText, которые
// питают отпечаток и порог минимального контента.
//
// Записи ниже порога помечаются TooShort, но не отбрасываются:
// нормализация никогда не теряет записи, только аннотирует.
func Normalize(rec *Record, opts NormalizeOptions) {
	rec.Article.Title = collapseSpace(rec.Article.Title)
	rec.Article.Text = collapseSpace(rec.Article.Text)
	rec.Article.URL = CanonicalURL(rec.Article.URL, opts.TrackingParams)

	for i := range rec.Article.Images {
		rec.Article.Images[i].ImageURL = strings.TrimSpace(rec.Article.Images[i].ImageURL)
	}

	rec.HashTitle = foldForHash(rec.Article.Title, opts.StopWords)
	rec.NormText = foldText(rec.Article.Text)

	if utf8.RuneCountInString(rec.NormText) < opts.MinTextLength {
		rec.TooShort = true
		rec.Note("normalize: text below min length (%d < %d)",
			utf8.RuneCountInString(rec.NormText), opts.MinTextLength)
	}

	rec.State = StateNormalized
}

// collapseSpace схлопывает пробельные последовательности в один пробел
// и убирает ведущие/замыкающие пробелы. Регистр и пунктуация не меняются.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// foldText — рабочая копия текста: NFKC, нижний регистр, схлопнутые
// пробелы. Пунктуация сохраняется — копия используется только для
// порога длины.
func foldText(s string) string {
	return collapseSpace(strings.ToLower(norm.NFKC.String(s)))
}

// foldForHash — hash-копия заголовка: NFKC, нижний регистр, пунктуация
// и символы заменены пробелами, стоп-слова вырезаны.
func foldForHash(s string, stopWords []string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return ' '
		}
		return unicode.ToLower(r)
	}, norm.NFKC.String(s))

	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	words := strings.Fields(folded)
	kept := words[:0]
	for _, w := range words {
		if _, ok := stop[w]; ok {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}

// CanonicalURL канонизирует ссылку: схема и хост в нижний регистр,
// фрагмент отброшен, трекинговые query-параметры вырезаны (встроенные
// префиксные правила + конфигурируемый deny-list), замыкающий слэш
// убран у некорневых путей. Невалидный вход возвращается как есть —
// отбраковка невалидных URL остаётся за валидатором.
func CanonicalURL(raw string, trackingParams []string) string {
	str := strings.TrimSpace(raw)
	if str == "" {
		return str
	}

	u, err := url.Parse(str)
	if err != nil {
		return str
	}

	if u.Scheme != "" {
		u.Scheme = strings.ToLower(u.Scheme)
	}
	if u.Host != "" {
		u.Host = strings.ToLower(u.Host)
	}

	u.Fragment = ""

	deny := make(map[string]struct{}, len(trackingParams))
	for _, p := range trackingParams {
		deny[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}

	q := u.Query()
	for k := range q {
		if isTrackingParam(strings.ToLower(k), deny) {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
	}

	return u.String()
}

// isTrackingParam — встроенные префиксные правила плюс точный deny-list.
func isTrackingParam(lk string, deny map[string]struct{}) bool {
	if _, ok := deny[lk]; ok {
		return true
	}

	return lk == "utm" ||
		strings.HasPrefix(lk, "utm_") ||
		strings.HasSuffix(lk, "clid") ||
		strings.HasPrefix(lk, "mc_") ||
		lk == "igshid"
}

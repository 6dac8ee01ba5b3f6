// log протаскивает *slog.Logger через context.Context: прогон получает
// свой логгер (run_id, окружение) в cmd/etl-service и несёт его сквозь
// service и storage без явного параметра в каждой сигнатуре.
package log

import (
	"context"
	"log/slog"
)

// loggerKey — приватный тип ключа; защищает от коллизий с чужими
// значениями контекста.
type loggerKey struct{}

// Into возвращает производный контекст с вложенным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From извлекает логгер из контекста. Если логгера нет, значение
// чужого типа или nil — возвращает slog.Default(), поэтому вызов
// безопасен в любой точке пайплайна.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}

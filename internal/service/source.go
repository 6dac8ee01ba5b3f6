package service

import (
	"context"

	"github.com/pribylovaa/go-news-etl/internal/models"
)

// RawSource описывает абстракцию источника сырых записей — внешнего
// коллектора, отдающего ограниченную последовательность payload'ов
// одного прогона.
//
// Требования к реализации:
//  1. Последовательность ограничена: канал закрывается после последнего
//     объекта — один прогон обрабатывает один bounded-набор.
//  2. Порядок отправки стабилен между повторными прогонами по тем же
//     данным — от него зависит tie-break дедупликации «первый выигрывает».
//  3. Реализация обязана уважать ctx (отмена/таймауты).
//  4. Ошибка чтения отдельного объекта отправляется как RawResult с Err
//     и не прерывает последовательность.
type RawSource interface {
	Payloads(ctx context.Context) (<-chan RawResult, error)
}

// RawResult — один сырой payload или ошибка его чтения.
type RawResult struct {
	// Key — адрес объекта у источника (для диагностики).
	Key string
	// Payload — слабо типизированное содержимое объекта.
	Payload models.RawPayload
	// Err — ошибка чтения/разбора; Payload при этом пуст.
	Err error
}

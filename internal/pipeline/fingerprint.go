package pipeline

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// nsArticle — неймспейс UUIDv5 для стабильных идентификаторов записей.
// Менять нельзя: от него зависят ID уже зафиксированных записей.
var nsArticle = uuid.MustParse("9f2c1a4e-5b63-4c7d-8a01-3e9d64f0b7c2")

// Fingerprint вычисляет отпечаток контента: sha256 (hex) поверх
// канонизированного URL и нормализованного заголовка.
//
// Отпечаток — ключ дедупликации и адресации в хранилищах. Коллизия
// отпечатков у действительно разного контента — принятый и
// задокументированный риск ложного дубля: выигрывает первый увиденный,
// слияния не происходит.
func Fingerprint(canonicalURL, hashTitle string) string {
	h := sha256.New()
	h.Write([]byte(canonicalURL))
	h.Write([]byte{'\n'})
	h.Write([]byte(hashTitle))

	return hex.EncodeToString(h.Sum(nil))
}

// ArticleID — стабильный, производный от отпечатка идентификатор записи
// (UUIDv5). Повторная обработка того же контента даёт тот же ID —
// это и делает повторную загрузку идемпотентной.
func ArticleID(fingerprint string) uuid.UUID {
	return uuid.NewSHA1(nsArticle, []byte(fingerprint))
}

// Stamp проставляет записи отпечаток и производный идентификатор.
// Вызывается после нормализации, до дедупликации.
func Stamp(rec *Record) {
	rec.Article.Fingerprint = Fingerprint(rec.Article.URL, rec.HashTitle)
	rec.Article.ID = ArticleID(rec.Article.Fingerprint)
}

// service содержит бизнес-логику etl-сервиса: оркестрацию одного
// прогона пайплайна поверх чистых стадий из internal/pipeline
// и контрактов хранилищ из internal/storage.
package service

import (
	"errors"

	"github.com/pribylovaa/go-news-etl/internal/config"
	"github.com/pribylovaa/go-news-etl/internal/pipeline"
	"github.com/pribylovaa/go-news-etl/internal/storage"
)

var (
	// ErrRegistryUnavailable — реестр отпечатков недоступен; прогон
	// прерван, чтобы не рисковать дублями в каноническом датасете.
	ErrRegistryUnavailable = errors.New("fingerprint registry unavailable")
	// ErrSinkUnavailable — канонический сток недоступен целиком:
	// ни одну принятую запись зафиксировать не удалось.
	ErrSinkUnavailable = errors.New("canonical sink unavailable")
)

// Service — оркестратор transform-ядра.
type Service struct {
	storage storage.Storage
	blobs   storage.BlobStorage
	cfg     config.Config
	prober  *pipeline.Prober
}

// New создает новый экземпляр Service.
// prober == nil отключает сетевую пробу изображений.
func New(st storage.Storage, blobs storage.BlobStorage, cfg config.Config, prober *pipeline.Prober) *Service {
	return &Service{
		storage: st,
		blobs:   blobs,
		cfg:     cfg,
		prober:  prober,
	}
}

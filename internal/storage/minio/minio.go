// minio предоставляет реализацию storage.BlobStorage и service.RawSource
// на базе MinIO/S3.
// minio.go — конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие рабочих бакетов.
// objects.go — операции поверх клиента:
//   - чтение сырых объектов коллекторов из collect-бакета;
//   - запись стадийных объектов в transform/quarantine-бакеты;
//   - запись статистики прогонов в stats-бакет.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-news-etl/internal/config"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/storage"
)

// Blobs — адаптер MinIO для стадийных объектов пайплайна.
// Хранит ссылку на конфиг и minio-go клиент.
type Blobs struct {
	cfg    *config.Config
	client *mclient.Client
}

// New создает и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности всех рабочих бакетов.
func New(ctx context.Context, cfg *config.Config) (*Blobs, error) {
	const op = "storage/minio/New"

	endpoint := cfg.S3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buckets := []string{
		cfg.S3.CollectBucket,
		cfg.S3.TransformBucket,
		cfg.S3.QuarantineBucket,
		cfg.S3.StatsBucket,
	}

	for _, bucket := range buckets {
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if !exists {
			return nil, fmt.Errorf("%s: bucket %q does not exist", op, bucket)
		}
	}

	return &Blobs{cfg: cfg, client: client}, nil
}

// bucketForStage отображает имя стадии в рабочий бакет.
func (b *Blobs) bucketForStage(stage string) (string, error) {
	switch stage {
	case models.StageTransform:
		return b.cfg.S3.TransformBucket, nil
	case models.StageQuarantine:
		return b.cfg.S3.QuarantineBucket, nil
	default:
		return "", fmt.Errorf("unknown stage %q", stage)
	}
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.BlobStorage = (*Blobs)(nil)

package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/service"
)

// PutRecord пишет стадийный объект записи по ключу <fingerprint>.json.
// Перезапись идемпотентна: ключ производен от отпечатка контента.
func (b *Blobs) PutRecord(ctx context.Context, stage, fingerprint string, data []byte) error {
	const op = "storage/minio/objects/PutRecord"

	bucket, err := b.bucketForStage(stage)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	key := fingerprint + ".json"

	_, err = b.client.PutObject(ctx, bucket, key,
		bytes.NewReader(data), int64(len(data)),
		mclient.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PutRunStats пишет сводку прогона по ключу <run_id>.json в stats-бакет.
func (b *Blobs) PutRunStats(ctx context.Context, runID string, data []byte) error {
	const op = "storage/minio/objects/PutRunStats"

	key := runID + ".json"

	_, err := b.client.PutObject(ctx, b.cfg.S3.StatsBucket, key,
		bytes.NewReader(data), int64(len(data)),
		mclient.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Payloads читает сырые объекты коллекторов из collect-бакета.
//
// Листинг S3 лексикографичен по ключу, поэтому порядок отправки стабилен
// между прогонами по тем же данным. Ошибка чтения/разбора отдельного
// объекта отправляется в канал как RawResult.Err и не прерывает
// последовательность; фатальна только ошибка самого листинга.
func (b *Blobs) Payloads(ctx context.Context) (<-chan service.RawResult, error) {
	out := make(chan service.RawResult)

	go func() {
		defer close(out)

		objects := b.client.ListObjects(ctx, b.cfg.S3.CollectBucket, mclient.ListObjectsOptions{
			Recursive: true,
		})

		for obj := range objects {
			if obj.Err != nil {
				select {
				case out <- service.RawResult{Err: obj.Err}:
				case <-ctx.Done():
					return
				}
				continue
			}

			res := b.readPayload(ctx, obj.Key)

			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// readPayload читает и разбирает один сырой объект.
func (b *Blobs) readPayload(ctx context.Context, key string) service.RawResult {
	const op = "storage/minio/objects/readPayload"

	obj, err := b.client.GetObject(ctx, b.cfg.S3.CollectBucket, key, mclient.GetObjectOptions{})
	if err != nil {
		return service.RawResult{Key: key, Err: fmt.Errorf("%s: %w", op, err)}
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return service.RawResult{Key: key, Err: fmt.Errorf("%s: %w", op, err)}
	}

	var payload models.RawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return service.RawResult{Key: key, Err: fmt.Errorf("%s: %w", op, err)}
	}

	return service.RawResult{Key: key, Payload: payload}
}

// Проверка выполнения контракта источника сырых записей.
var _ service.RawSource = (*Blobs)(nil)

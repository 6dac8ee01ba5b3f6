package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/pipeline"
	"github.com/pribylovaa/go-news-etl/internal/storage"
	"github.com/pribylovaa/go-news-etl/pkg/log"
)

// Run выполняет один прогон пайплайна над ограниченным набором сырых
// записей источника src.
//
// Особенности:
//   - параллельная фаза extract→normalize→features не имеет разделяемого
//     состояния и раскладывается по воркерам (cfg.Pipeline.Workers);
//   - свёртка dedup→validate→persist выполняется однопоточно в стабильном
//     порядке входа — это сохраняет tie-break «первый выигрывает» и
//     сериализует доступ к реестру отпечатков;
//   - отказ записи никогда не прерывает прогон; прерывают только
//     недоступность реестра (ErrRegistryUnavailable) и полная
//     недоступность канонического стока (ErrSinkUnavailable);
//   - прогон завершается сводкой статистики даже при частичных отказах.
func (s *Service) Run(ctx context.Context, src RawSource) (*models.RunStats, error) {
	const op = "service/run/Run"

	lg := log.From(ctx)

	stats := &models.RunStats{
		RunID:          uuid.New(),
		StartedAt:      time.Now().UTC(),
		StageDurations: make(map[string]time.Duration),
	}

	lg.Info("run_start",
		slog.String("op", op),
		slog.String("run_id", stats.RunID.String()),
	)

	payloads, err := src.Payloads(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: raw_source: %w", op, err)
	}

	var raws []RawResult
	for res := range payloads {
		stats.Counts.Raw++

		if res.Err != nil {
			lg.Warn("raw_read_error",
				slog.String("op", op),
				slog.String("key", res.Key),
				slog.String("err", res.Err.Error()),
			)
			continue
		}

		raws = append(raws, res)
	}

	records := s.transformPhase(ctx, raws, stats)
	stats.Counts.Extracted = len(records)

	if err := s.foldPhase(ctx, records, stats); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats.FinishedAt = time.Now().UTC()
	s.saveStats(ctx, stats)

	lg.Info("run_finished",
		slog.String("op", op),
		slog.String("run_id", stats.RunID.String()),
		slog.Int("raw", stats.Counts.Raw),
		slog.Int("extracted", stats.Counts.Extracted),
		slog.Int("duplicates_dropped", stats.Counts.DuplicatesDropped),
		slog.Int("rejected", stats.Counts.Rejected),
		slog.Int("accepted", stats.Counts.Accepted),
		slog.Int("write_failures", stats.Counts.WriteFailures),
		slog.Duration("took", stats.FinishedAt.Sub(stats.StartedAt)),
	)

	return stats, nil
}

// transformPhase — параллельная фаза чистых стадий. Результаты
// складываются по исходному индексу: стабильный порядок входа
// восстанавливается до свёртки.
func (s *Service) transformPhase(ctx context.Context, raws []RawResult, stats *models.RunStats) []*pipeline.Record {
	opts := pipeline.NormalizeOptions{
		MinTextLength:  s.cfg.Pipeline.MinTextLength,
		TrackingParams: s.cfg.Pipeline.TrackingParams,
		StopWords:      s.cfg.Pipeline.StopWords,
	}

	records := make([]*pipeline.Record, len(raws))

	var extractNS, normalizeNS, featuresNS atomic.Int64

	workers := s.cfg.Pipeline.Workers
	if workers <= 0 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range raws {
		select {
		case <-ctx.Done():
			wg.Wait()
			return records[:i:i]
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(i int, raw RawResult) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			rec := pipeline.Extract(raw.Payload, i, raw.Key)
			extractNS.Add(time.Since(start).Nanoseconds())

			start = time.Now()
			pipeline.Normalize(rec, opts)
			pipeline.Stamp(rec)
			normalizeNS.Add(time.Since(start).Nanoseconds())

			start = time.Now()
			pipeline.BuildFeatures(rec)
			featuresNS.Add(time.Since(start).Nanoseconds())

			records[i] = rec
		}(i, raws[i])
	}

	wg.Wait()

	stats.StageDurations[models.StageExtract] = time.Duration(extractNS.Load())
	stats.StageDurations[models.StageNormalize] = time.Duration(normalizeNS.Load())
	stats.StageDurations[models.StageFeatures] = time.Duration(featuresNS.Load())

	return records
}

// foldPhase — однопоточная свёртка dedup→validate→persist в стабильном
// порядке входа. Единственная точка разделяемого состояния — реестр
// отпечатков внутри дедупликатора.
func (s *Service) foldPhase(ctx context.Context, records []*pipeline.Record, stats *models.RunStats) error {
	const op = "service/run/foldPhase"

	lg := log.From(ctx)

	dedup := pipeline.NewDeduplicator(s.storage)
	validator := pipeline.NewValidator(s.cfg.Pipeline.MinTextLength, s.prober)

	// Кэш справочника источников на прогон.
	sources := make(map[string]uuid.UUID)

	var dedupDur, validateDur, persistDur time.Duration
	var acceptAttempts, acceptFailures int

	for _, rec := range records {
		if rec == nil {
			continue
		}

		start := time.Now()
		dup, err := dedup.Check(ctx, rec)
		dedupDur += time.Since(start)
		if err != nil {
			if errors.Is(err, storage.ErrRegistryUnavailable) {
				return fmt.Errorf("%s: %w", op, ErrRegistryUnavailable)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if dup {
			stats.Counts.DuplicatesDropped++
			lg.Info("record_duplicate",
				slog.String("op", op),
				slog.String("fingerprint", rec.Article.Fingerprint),
				slog.String("duplicate_of", rec.DuplicateOf.String()),
			)
			continue
		}

		if rec.SourceName != "" {
			id, ok := sources[rec.SourceName]
			if !ok {
				src, err := s.storage.EnsureSource(ctx, rec.SourceName, rec.SourceURL)
				if err != nil {
					lg.Warn("source_resolve_failed",
						slog.String("op", op),
						slog.String("source", rec.SourceName),
						slog.String("err", err.Error()),
					)
					stats.Counts.WriteFailures++
					continue
				}
				id = src.ID
				sources[rec.SourceName] = id
			}
			rec.Article.SourceID = id
		}

		start = time.Now()
		accepted := validator.Validate(ctx, rec)
		validateDur += time.Since(start)

		start = time.Now()
		if accepted {
			acceptAttempts++
			ok, err := s.persistAccepted(ctx, rec, stats)
			if err != nil {
				persistDur += time.Since(start)
				return fmt.Errorf("%s: %w", op, err)
			}
			if !ok {
				acceptFailures++
			}
		} else {
			stats.Counts.Rejected++
			s.persistRejected(ctx, rec, stats)
		}
		persistDur += time.Since(start)
	}

	stats.StageDurations[models.StageDedup] = dedupDur
	stats.StageDurations[models.StageValidate] = validateDur
	stats.StageDurations[models.StagePersist] = persistDur

	// Полная недоступность канонического стока: были попытки фиксации,
	// ни одна не удалась.
	if acceptAttempts > 0 && acceptFailures == acceptAttempts {
		return fmt.Errorf("%s: %w", op, ErrSinkUnavailable)
	}

	return nil
}

// persistAccepted фиксирует принятую запись: стадийный blob →
// каноническая таблица → регистрация отпечатка.
//
// Порядок выдерживает инвариант «зарегистрирован ⇒ полностью
// зафиксирован»: при отказе любой записи отпечаток не регистрируется,
// и следующий прогон переоценит запись заново (перезапись идемпотентна).
// Отказ записи не фатален; отказ регистрации — фатален (реестр).
// Возвращает false, если запись не удалось зафиксировать.
func (s *Service) persistAccepted(ctx context.Context, rec *pipeline.Record, stats *models.RunStats) (bool, error) {
	const op = "service/run/persistAccepted"

	lg := log.From(ctx)

	rec.Article.IngestedAt = stats.StartedAt
	stampOwned(rec)

	data, err := json.Marshal(persistedRow(rec, nil))
	if err != nil {
		// Маршалинг доменной структуры не зависит от входа; отказ здесь —
		// программная ошибка, но батч из-за одной записи не прерываем.
		lg.Error("record_marshal_failed",
			slog.String("op", op),
			slog.String("fingerprint", rec.Article.Fingerprint),
			slog.String("err", err.Error()),
		)
		stats.Counts.WriteFailures++
		return false, nil
	}

	if err := s.blobs.PutRecord(ctx, models.StageTransform, rec.Article.Fingerprint, data); err != nil {
		lg.Warn("blob_write_failed",
			slog.String("op", op),
			slog.String("fingerprint", rec.Article.Fingerprint),
			slog.String("err", err.Error()),
		)
		stats.Counts.WriteFailures++
		return false, nil
	}

	if err := s.storage.SaveArticle(ctx, &rec.Article, rec.Meta); err != nil {
		lg.Warn("article_write_failed",
			slog.String("op", op),
			slog.String("fingerprint", rec.Article.Fingerprint),
			slog.String("err", err.Error()),
		)
		stats.Counts.WriteFailures++
		return false, nil
	}

	if err := s.storage.Register(ctx, rec.Article.Fingerprint, rec.Article.ID); err != nil {
		if errors.Is(err, storage.ErrRegistryUnavailable) {
			return false, fmt.Errorf("%s: %w", op, ErrRegistryUnavailable)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	rec.State = pipeline.StatePersisted
	stats.Counts.Accepted++

	return true, nil
}

// persistRejected отправляет отбракованную запись в карантин.
// Отбраковка — рутинное событие: логируется как Info, не как ошибка.
func (s *Service) persistRejected(ctx context.Context, rec *pipeline.Record, stats *models.RunStats) {
	const op = "service/run/persistRejected"

	lg := log.From(ctx)

	stampOwned(rec)

	rejected := &models.RejectedArticle{
		Article:            rec.Article,
		Reason:             rec.Reason,
		ExtractionDegraded: rec.ExtractionDegraded,
		Trail:              rec.Trail,
		RejectedAt:         stats.StartedAt,
	}

	lg.Info("record_rejected",
		slog.String("op", op),
		slog.String("fingerprint", rec.Article.Fingerprint),
		slog.String("reason", rec.Reason),
	)

	if data, err := json.Marshal(persistedRow(rec, rejected)); err == nil {
		if err := s.blobs.PutRecord(ctx, models.StageQuarantine, rec.Article.Fingerprint, data); err != nil {
			lg.Warn("quarantine_blob_write_failed",
				slog.String("op", op),
				slog.String("fingerprint", rec.Article.Fingerprint),
				slog.String("err", err.Error()),
			)
			stats.Counts.WriteFailures++
		}
	}

	if err := s.storage.SaveRejected(ctx, rejected); err != nil {
		lg.Warn("quarantine_write_failed",
			slog.String("op", op),
			slog.String("fingerprint", rec.Article.Fingerprint),
			slog.String("err", err.Error()),
		)
		stats.Counts.WriteFailures++
	}
}

// saveStats фиксирует сводку прогона в журнале и blob-хранилище.
// Отказ любой из записей не отменяет сводку — она уже возвращена
// вызывающему; здесь только предупреждения.
func (s *Service) saveStats(ctx context.Context, stats *models.RunStats) {
	const op = "service/run/saveStats"

	lg := log.From(ctx)

	if err := s.storage.SaveRunStats(ctx, stats); err != nil {
		lg.Warn("run_stats_write_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	data, err := json.Marshal(statsPayload(stats))
	if err != nil {
		lg.Error("run_stats_marshal_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return
	}

	if err := s.blobs.PutRunStats(ctx, stats.RunID.String(), data); err != nil {
		lg.Warn("run_stats_blob_write_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}

// stampOwned детерминированно проставляет идентификаторы владения
// изображениям и метаданным: производные от ID записи, поэтому
// повторная фиксация даёт те же строки.
func stampOwned(rec *pipeline.Record) {
	for i := range rec.Article.Images {
		rec.Article.Images[i].ArticleID = rec.Article.ID
		rec.Article.Images[i].ID = uuid.NewSHA1(rec.Article.ID, []byte(fmt.Sprintf("image/%d", i)))
	}

	for i := range rec.Meta {
		rec.Meta[i].ArticleID = rec.Article.ID
		rec.Meta[i].ID = uuid.NewSHA1(rec.Article.ID, []byte("meta/"+rec.Meta[i].Key))
	}
}

package service

// Тесты оркестрации прогона (run.go).
//
//  Проверяем:
//  - happy-path: счётчики, порядок фиксации blob → таблица → реестр;
//  - внутрипрогонный дубль: первый выигрывает, второй не фиксируется;
//  - межпрогонный дубль: отпечаток из реестра → duplicates_dropped;
//  - отбраковку: карантинный blob + таблица, запись не регистрируется;
//  - отказ записи одной из записей: не фатален, write_failures растёт,
//    отпечаток не регистрируется;
//  - недоступность реестра: прогон прерывается ErrRegistryUnavailable;
//  - полную недоступность стока: ErrSinkUnavailable;
//  - ошибки чтения отдельных сырых объектов не прерывают прогон.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockStorage, MockBlobStorage).

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/config"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/storage"
	"github.com/pribylovaa/go-news-etl/mocks"
	"github.com/stretchr/testify/require"
)

// stubSource — in-memory источник сырых записей.
type stubSource struct {
	results []RawResult
}

func (s *stubSource) Payloads(_ context.Context) (<-chan RawResult, error) {
	ch := make(chan RawResult)
	go func() {
		defer close(ch)
		for _, r := range s.results {
			ch <- r
		}
	}()
	return ch, nil
}

func testConfig() config.Config {
	return config.Config{
		Pipeline: config.PipelineConfig{
			MinTextLength: 5,
			Workers:       2,
		},
	}
}

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockBlobStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	blobs := mocks.NewMockBlobStorage(ctrl)
	s := New(st, blobs, testConfig(), nil)
	return s, st, blobs, ctrl
}

// validPayload — корректный payload, проходящий все правила валидатора.
func validPayload(n int) models.RawPayload {
	return models.RawPayload{
		"source_name": "example-news",
		"source_url":  "https://example.org",
		"url":         fmt.Sprintf("https://example.org/articles/%d", n),
		"title":       fmt.Sprintf("Title %d", n),
		"text":        strings.Repeat("body text ", 10),
	}
}

func expectStats(st *mocks.MockStorage, blobs *mocks.MockBlobStorage) {
	st.EXPECT().SaveRunStats(gomock.Any(), gomock.Any()).Return(nil)
	blobs.EXPECT().PutRunStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func TestRun_HappyPath_TwoAccepted(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: validPayload(1)},
		{Key: "collect/2.json", Payload: validPayload(2)},
	}}

	sourceID := uuid.New()
	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil).Times(2)
	// Источник резолвится один раз: кэш на прогон.
	st.EXPECT().EnsureSource(gomock.Any(), "example-news", "https://example.org").
		Return(&models.Source{ID: sourceID, Name: "example-news"}, nil).Times(1)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageTransform, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	st.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 2, stats.Counts.Raw)
	require.Equal(t, 2, stats.Counts.Extracted)
	require.Equal(t, 2, stats.Counts.Accepted)
	require.Equal(t, 0, stats.Counts.Rejected)
	require.Equal(t, 0, stats.Counts.DuplicatesDropped)
	require.Equal(t, 0, stats.Counts.WriteFailures)
}

// Повторный прогон по тем же данным: каждый отпечаток уже в реестре,
// ни одной новой фиксации — датасет не растёт (идемпотентность).
func TestRun_SecondRun_AllDuplicates(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: validPayload(1)},
		{Key: "collect/2.json", Payload: validPayload(2)},
	}}

	prior := uuid.New()
	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(prior, true, nil).Times(2)
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 2, stats.Counts.DuplicatesDropped)
	require.Equal(t, 0, stats.Counts.Accepted)
	require.Equal(t, 0, stats.Counts.Rejected)
}

// Один и тот же payload дважды в одном прогоне: второе вхождение —
// внутрипрогонный дубль, реестр опрошен один раз, фиксация одна.
func TestRun_WithinRunDuplicate_FirstWins(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	payload := validPayload(1)
	// Вариация трекингового параметра не меняет отпечаток.
	twin := validPayload(1)
	twin["url"] = twin["url"].(string) + "?utm_source=feed"

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: payload},
		{Key: "collect/2.json", Payload: twin},
	}}

	sourceID := uuid.New()
	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil).Times(1)
	st.EXPECT().EnsureSource(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Source{ID: sourceID}, nil).Times(1)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageTransform, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	st.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 1, stats.Counts.DuplicatesDropped)
	require.Equal(t, 1, stats.Counts.Accepted)
}

func TestRun_Rejected_GoesToQuarantine(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	short := validPayload(1)
	short["text"] = "tiny"

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: short},
	}}

	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil)
	st.EXPECT().EnsureSource(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Source{ID: uuid.New()}, nil)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageQuarantine, gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveRejected(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *models.RejectedArticle) error {
			require.Equal(t, "too_short", rec.Reason)
			require.NotEmpty(t, rec.Trail)
			return nil
		})
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 1, stats.Counts.Rejected)
	require.Equal(t, 0, stats.Counts.Accepted)
}

// Отказ табличной записи одной из двух: не фатален, отпечаток отказавшей
// не регистрируется — следующий прогон переоценит её заново.
func TestRun_WriteFailure_NonFatal_NotRegistered(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: validPayload(1)},
		{Key: "collect/2.json", Payload: validPayload(2)},
	}}

	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil).Times(2)
	st.EXPECT().EnsureSource(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Source{ID: uuid.New()}, nil).Times(1)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageTransform, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	gomock.InOrder(
		st.EXPECT().SaveArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down")),
		st.EXPECT().SaveArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)
	// Регистрируется только успешно зафиксированная запись.
	st.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 1, stats.Counts.Accepted)
	require.Equal(t, 1, stats.Counts.WriteFailures)
}

func TestRun_RegistryUnavailable_Fatal(t *testing.T) {
	s, st, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: validPayload(1)},
	}}

	st.EXPECT().Contains(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, false, fmt.Errorf("contains: %w", storage.ErrRegistryUnavailable))

	_, err := s.Run(context.Background(), src)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRegistryUnavailable)
}

// Все попытки фиксации принятых записей отказали — сток недоступен
// целиком, прогон прерывается.
func TestRun_SinkUnavailable_Fatal(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/1.json", Payload: validPayload(1)},
		{Key: "collect/2.json", Payload: validPayload(2)},
	}}

	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil).Times(2)
	st.EXPECT().EnsureSource(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Source{ID: uuid.New()}, nil).Times(1)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageTransform, gomock.Any(), gomock.Any()).
		Return(errors.New("s3 down")).Times(2)

	_, err := s.Run(context.Background(), src)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSinkUnavailable)
}

// Ошибка чтения отдельного сырого объекта учитывается в raw, но не
// прерывает прогон и не порождает записи.
func TestRun_RawReadError_Skipped(t *testing.T) {
	s, st, blobs, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	src := &stubSource{results: []RawResult{
		{Key: "collect/broken.json", Err: errors.New("corrupt object")},
		{Key: "collect/1.json", Payload: validPayload(1)},
	}}

	st.EXPECT().Contains(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, nil)
	st.EXPECT().EnsureSource(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Source{ID: uuid.New()}, nil)
	blobs.EXPECT().PutRecord(gomock.Any(), models.StageTransform, gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SaveArticle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	expectStats(st, blobs)

	stats, err := s.Run(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 2, stats.Counts.Raw)
	require.Equal(t, 1, stats.Counts.Extracted)
	require.Equal(t, 1, stats.Counts.Accepted)
}

package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-news-etl/internal/config"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/service"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают рабочие бакеты пайплайна;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    PutRecord: запись стадийного объекта в transform/quarantine и ошибку
//    на неизвестной стадии;
//    PutRunStats: запись сводки в stats-бакет;
//    Payloads: стабильный (лексикографический) порядок выдачи, per-object
//    ошибки разбора без прерывания последовательности.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBuckets bool) (*Blobs, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBuckets {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		for _, bucket := range []string{"collect", "transform", "quarantine", "stats"} {
			require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
		}
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:         endpoint,
			RootUser:         rootUser,
			RootPassword:     rootPassword,
			CollectBucket:    "collect",
			TransformBucket:  "transform",
			QuarantineBucket: "quarantine",
			StatsBucket:      "stats",
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBuckets {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_New_BucketsMustExist(t *testing.T) {
	// Без предварительного создания бакетов New должен вернуть ошибку.
	_, _ = startMinio(t, false)
}

func TestIntegration_PutRecord_StageBuckets(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	data := []byte(`{"id":"x"}`)

	require.NoError(t, st.PutRecord(ctx, models.StageTransform, "fp-1", data))
	require.NoError(t, st.PutRecord(ctx, models.StageQuarantine, "fp-2", data))

	obj, err := st.client.GetObject(ctx, "transform", "fp-1.json", mclient.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(obj)
	require.NoError(t, err)
	require.Equal(t, data, buf.Bytes())

	// Перезапись того же отпечатка идемпотентна.
	require.NoError(t, st.PutRecord(ctx, models.StageTransform, "fp-1", data))

	// Неизвестная стадия — ошибка без записи.
	require.Error(t, st.PutRecord(ctx, "extract", "fp-3", data))
}

func TestIntegration_PutRunStats(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, st.PutRunStats(ctx, "run-42", []byte(`{"raw":10}`)))

	_, err := st.client.StatObject(ctx, "stats", "run-42.json", mclient.StatObjectOptions{})
	require.NoError(t, err)
}

func TestIntegration_Payloads_StableOrderAndPerObjectErrors(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()

	put := func(key string, body []byte) {
		_, err := st.client.PutObject(ctx, "collect", key,
			bytes.NewReader(body), int64(len(body)),
			mclient.PutObjectOptions{ContentType: "application/json"})
		require.NoError(t, err)
	}

	putJSON := func(key, url string) {
		body, err := json.Marshal(models.RawPayload{"url": url, "title": "T", "text": "B", "source_name": "s"})
		require.NoError(t, err)
		put(key, body)
	}

	// Ключи нарочно не по порядку записи: листинг лексикографичен.
	putJSON("b.json", "https://example.org/b")
	putJSON("a.json", "https://example.org/a")
	put("c.json", []byte("{broken"))

	ch, err := st.Payloads(ctx)
	require.NoError(t, err)

	var results []service.RawResult
	for res := range ch {
		results = append(results, res)
	}

	require.Len(t, results, 3)
	require.Equal(t, "a.json", results[0].Key)
	require.Equal(t, "https://example.org/a", results[0].Payload["url"])
	require.Equal(t, "b.json", results[1].Key)
	require.Equal(t, "c.json", results[2].Key)
	require.Error(t, results[2].Err)
	require.Nil(t, results[2].Payload)
}

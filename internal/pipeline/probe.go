package pipeline

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/go-news-etl/pkg/log"
)

// RetryPolicy — явная политика повторов сетевой пробы.
// Передаётся в Prober как объект, а не прошивается сквозной логикой.
type RetryPolicy struct {
	// MaxAttempts — общее число попыток (минимум 1).
	MaxAttempts int
	// Backoff — базовая задержка; удваивается после каждой неудачи.
	Backoff time.Duration
	// Timeout — таймаут одной попытки.
	Timeout time.Duration
}

// Prober выполняет best-effort проверку достижимости изображения —
// единственную сетевую точку пайплайна.
//
// Отказ пробы деградирует мягко: ссылка на изображение удаляется,
// запись не отбраковывается.
type Prober struct {
	client *http.Client
	policy RetryPolicy
}

// NewProber создаёт пробер. Нулевые поля политики заменяются
// консервативными значениями.
func NewProber(client *http.Client, policy RetryPolicy) *Prober {
	if client == nil {
		client = &http.Client{}
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Timeout <= 0 {
		policy.Timeout = 3 * time.Second
	}

	return &Prober{client: client, policy: policy}
}

// Reachable сообщает, отвечает ли URL на HEAD-запрос статусом < 400.
// Повторы ограничены политикой; между попытками — экспоненциальная
// задержка. Уважает отмену ctx.
func (p *Prober) Reachable(ctx context.Context, rawURL string) bool {
	const op = "pipeline/probe/Reachable"

	backoff := p.policy.Backoff

	for attempt := 1; attempt <= p.policy.MaxAttempts; attempt++ {
		if ok := p.tryOnce(ctx, rawURL); ok {
			return true
		}

		if ctx.Err() != nil {
			return false
		}

		if attempt < p.policy.MaxAttempts && backoff > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	log.From(ctx).Debug("probe_unreachable",
		slog.String("op", op),
		slog.String("url", rawURL),
		slog.Int("attempts", p.policy.MaxAttempts),
	)

	return false
}

func (p *Prober) tryOnce(ctx context.Context, rawURL string) bool {
	attemptCtx, cancel := context.WithTimeout(ctx, p.policy.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < http.StatusBadRequest
}

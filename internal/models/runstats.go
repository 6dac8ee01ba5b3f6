package models

import (
	"time"

	"github.com/google/uuid"
)

// Имена стадий пайплайна — ключи per-stage длительностей в RunStats
// и компоненты адресов в blob-хранилище.
const (
	StageExtract    = "extract"
	StageNormalize  = "normalize"
	StageDedup      = "dedup"
	StageFeatures   = "features"
	StageValidate   = "validate"
	StagePersist    = "persist"
	StageTransform  = "transform"
	StageQuarantine = "quarantine"
)

// RunCounts — счётчики одного прогона пайплайна.
type RunCounts struct {
	// Raw — число сырых объектов на входе.
	Raw int `json:"raw"`
	// Extracted — число черновиков после экстракции.
	Extracted int `json:"extracted"`
	// DuplicatesDropped — отброшено как дубликаты (в т.ч. межпрогонные).
	DuplicatesDropped int `json:"duplicates_dropped"`
	// Rejected — отбраковано валидатором (ушло в карантин).
	Rejected int `json:"rejected"`
	// Accepted — зафиксировано в каноническом датасете.
	Accepted int `json:"accepted"`
	// WriteFailures — записи, чью фиксацию не удалось выполнить;
	// не фатальны, будут повторены следующим прогоном.
	WriteFailures int `json:"write_failures"`
}

// RunStats — итоговая статистика прогона.
// Прогон всегда завершается этой сводкой, даже при частичных отказах
// на уровне отдельных записей.
type RunStats struct {
	RunID      uuid.UUID `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Counts     RunCounts `json:"counts"`
	// StageDurations — длительность каждой стадии по wall-clock.
	StageDurations map[string]time.Duration `json:"per_stage_duration"`
}

package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-news-etl/internal/models"
	"github.com/pribylovaa/go-news-etl/internal/pipeline"
)

// row — канонический JSON-вид записи для стадийных объектов
// blob-хранилища. Тот же вид используется и карантином: к каноническим
// полям добавляется блок диагностики отбраковки.
type row struct {
	ID          uuid.UUID  `json:"id"`
	SourceID    *uuid.UUID `json:"source_id,omitempty"`
	Fingerprint string     `json:"fingerprint"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Text        string     `json:"text"`
	Images      []rowImage `json:"images,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Lang        string     `json:"lang,omitempty"`
	Label       string     `json:"label,omitempty"`
	LabelSource string     `json:"label_source,omitempty"`
	License     string     `json:"license,omitempty"`

	TitleLength int  `json:"title_length"`
	TextLength  int  `json:"text_length"`
	NumImages   int  `json:"num_images"`
	HasImage    bool `json:"has_image"`

	Metadata map[string]string `json:"metadata,omitempty"`

	IngestedAt *time.Time `json:"ingested_at,omitempty"`

	// Диагностика отбраковки; присутствует только у карантинных объектов.
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	ExtractionDegraded bool       `json:"extraction_degraded,omitempty"`
	DiagnosticTrail    []string   `json:"diagnostic_trail,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty"`
}

type rowImage struct {
	ImageURL    string `json:"image_url"`
	ImageObject string `json:"image_object,omitempty"`
}

// persistedRow собирает JSON-вид записи из результата пайплайна.
// rejected != nil переключает вид в карантинный.
func persistedRow(rec *pipeline.Record, rejected *models.RejectedArticle) row {
	a := rec.Article

	r := row{
		ID:          a.ID,
		Fingerprint: a.Fingerprint,
		URL:         a.URL,
		Title:       a.Title,
		Text:        a.Text,
		Lang:        a.Lang,
		Label:       a.Label,
		LabelSource: a.LabelSource,
		License:     a.License,
		TitleLength: a.TitleLength,
		TextLength:  a.TextLength,
		NumImages:   a.NumImages,
		HasImage:    a.HasImage,
	}

	if a.SourceID != uuid.Nil {
		id := a.SourceID
		r.SourceID = &id
	}

	for _, img := range a.Images {
		r.Images = append(r.Images, rowImage{
			ImageURL:    img.ImageURL,
			ImageObject: img.ImageObject,
		})
	}

	if !a.PublishedAt.IsZero() {
		t := a.PublishedAt.UTC()
		r.PublishedAt = &t
	}

	if len(rec.Meta) > 0 {
		r.Metadata = make(map[string]string, len(rec.Meta))
		for _, m := range rec.Meta {
			r.Metadata[m.Key] = m.Value
		}
	}

	if rejected != nil {
		r.RejectionReason = rejected.Reason
		r.ExtractionDegraded = rejected.ExtractionDegraded
		r.DiagnosticTrail = rejected.Trail
		t := rejected.RejectedAt.UTC()
		r.RejectedAt = &t
		return r
	}

	if !a.IngestedAt.IsZero() {
		t := a.IngestedAt.UTC()
		r.IngestedAt = &t
	}

	return r
}

// statsRow — JSON-вид сводки прогона для blob-хранилища.
// Длительности стадий — в миллисекундах, ключ — имя стадии.
type statsRow struct {
	RunID            uuid.UUID        `json:"run_id"`
	StartedAt        time.Time        `json:"started_at"`
	FinishedAt       time.Time        `json:"finished_at"`
	Counts           models.RunCounts `json:"counts"`
	StageDurationsMS map[string]int64 `json:"per_stage_duration_ms"`
}

func statsPayload(stats *models.RunStats) statsRow {
	durations := make(map[string]int64, len(stats.StageDurations))
	for stage, d := range stats.StageDurations {
		durations[stage] = d.Milliseconds()
	}

	return statsRow{
		RunID:            stats.RunID,
		StartedAt:        stats.StartedAt.UTC(),
		FinishedAt:       stats.FinishedAt.UTC(),
		Counts:           stats.Counts,
		StageDurationsMS: durations,
	}
}
